// Package http exposes the order use cases over REST with echo.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"store/internal/core/application/usecases/commands"
	"store/internal/core/application/usecases/queries"
	"store/internal/core/domain/model/order"
	"store/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.GenericCommandResult, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// Server handles HTTP requests and delegates them to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler CreateOrderHandler

	// Query handlers
	getOrderHandler GetOrderHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	getOrderHandler GetOrderHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		getOrderHandler:    getOrderHandler,
		logger:             logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:number", s.GetOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CreateOrderItem{Product: item.Product, Quantity: item.Quantity})
	}
	cmd := commands.NewCreateOrderCommand(req.Customer, req.ZipCode, req.PromoCode, items)

	rctx := ctx.Request().Context()
	result, err := s.createOrderHandler.Handle(rctx, cmd)
	if err != nil {
		ordersTotal.WithLabelValues("failed").Inc()
		s.logger.ErrorContext(rctx, "create order failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	if !result.Success {
		if result.Message == commands.MsgInvalidOrder {
			ordersTotal.WithLabelValues("invalid").Inc()
		} else {
			ordersTotal.WithLabelValues("rejected").Inc()
		}
		return ctx.JSON(http.StatusUnprocessableEntity, result)
	}

	ordersTotal.WithLabelValues("accepted").Inc()
	if o, ok := result.Data.(*order.Order); ok {
		result.Data = orderFromDomain(o)
	}
	return ctx.JSON(http.StatusCreated, result)
}

// GetOrder handles GET /api/v1/orders/:number - returns one placed order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("number"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	rctx := ctx.Request().Context()
	resp, err := s.getOrderHandler.Handle(rctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		s.logger.ErrorContext(rctx, "get order failed", "number", query.Number(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(resp))
}
