package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"
	"store/internal/core/ports"
	"store/internal/pkg/clock"
	"store/internal/pkg/errs"
	"store/internal/pkg/notification"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	MsgInvalidOrder          = "invalid order"
	MsgOrderGenerationFailed = "order generation failed"
)

// CreateOrderCommandHandler places orders.
//
// The flow is validate, resolve, build, merge, then persist or reject:
//   - an invalid command is rejected before any repository is consulted
//   - customer, delivery fee, discount and products are looked up concurrently
//   - an unknown zip code means a zero fee and an unknown promo code means no discount
//   - a missing customer or product becomes a notification on the order
//   - the order is saved exactly once, and only when no notification was raised
//
// Business rejections come back as an unsuccessful GenericCommandResult with a
// nil error. A non-nil error always means an infrastructure failure.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(customers, fees, discounts, products, uowFactory, publisher, clk, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // storage unavailable, etc.
//	}
//	if !result.Success {
//	    return result.Notifications()
//	}
type CreateOrderCommandHandler struct {
	customers  ports.CustomerRepository
	fees       ports.DeliveryFeeRepository
	discounts  ports.DiscountRepository
	products   ports.ProductRepository
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// publisher may be nil, in which case no event is emitted.
func NewCreateOrderCommandHandler(
	customers ports.CustomerRepository,
	fees ports.DeliveryFeeRepository,
	discounts ports.DiscountRepository,
	products ports.ProductRepository,
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		customers:  customers,
		fees:       fees,
		discounts:  discounts,
		products:   products,
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// resolution holds everything looked up for one command.
type resolution struct {
	customer    *customer.Customer
	deliveryFee decimal.Decimal
	discount    *discount.Discount
	products    map[kernel.UUID]*product.Product
}

// Handle processes one order request. Every call works on its own
// notification set; nothing is shared between requests.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (GenericCommandResult, error) {
	if err := cmd.IsConstructed(); err != nil {
		return GenericCommandResult{}, err
	}

	var notes notification.Notifications

	notes.AddAll(cmd.Validate())
	if notes.IsInvalid() {
		h.logger.DebugContext(ctx, "order command rejected",
			"customer", cmd.Customer(), "notifications", len(notes))
		return NewFailureResult(MsgInvalidOrder, notes), nil
	}

	res, err := h.resolve(ctx, cmd)
	if err != nil {
		return GenericCommandResult{}, err
	}

	o := order.NewOrder(res.customer, res.deliveryFee, res.discount, h.clock.Now())
	for _, item := range cmd.Items() {
		o.AddItem(res.products[item.Product], item.Quantity)
	}

	notes.Merge(o)
	if notes.IsInvalid() {
		h.logger.DebugContext(ctx, "order rejected",
			"customer", cmd.Customer(), "notifications", len(notes))
		return NewFailureResult(MsgOrderGenerationFailed, notes), nil
	}

	if err = h.save(ctx, o); err != nil {
		return GenericCommandResult{}, err
	}

	h.publish(ctx, o)

	h.logger.InfoContext(ctx, "order generated",
		"number", o.Number(), "customer", cmd.Customer(), "items", len(o.Items()), "total", o.Total().String())

	return NewSuccessResult(fmt.Sprintf("order %s generated successfully", o.Number()), o), nil
}

// resolve runs the four independent lookups concurrently and joins them
// before the order is built. Not-found results fall back to their defaults;
// any other failure cancels the remaining lookups.
func (h *CreateOrderCommandHandler) resolve(ctx context.Context, cmd CreateOrderCommand) (resolution, error) {
	res := resolution{deliveryFee: decimal.Zero}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := h.customers.Get(gctx, cmd.Customer())
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return errs.Wrap(err, "resolve customer")
		}
		res.customer = c
		return nil
	})

	g.Go(func() error {
		fee, err := h.fees.Get(gctx, cmd.ZipCode())
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return errs.Wrap(err, "resolve delivery fee")
		}
		res.deliveryFee = fee
		return nil
	})

	if cmd.PromoCode() != "" {
		g.Go(func() error {
			d, err := h.discounts.Get(gctx, cmd.PromoCode())
			if err != nil {
				if isNotFound(err) {
					return nil
				}
				return errs.Wrap(err, "resolve discount")
			}
			res.discount = d
			return nil
		})
	}

	g.Go(func() error {
		found, err := h.products.Get(gctx, cmd.ProductIDs())
		if err != nil {
			return errs.Wrap(err, "resolve products")
		}
		res.products = make(map[kernel.UUID]*product.Product, len(found))
		for _, p := range found {
			res.products[p.ID()] = p
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return resolution{}, err
	}
	return res, nil
}

func (h *CreateOrderCommandHandler) save(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.Wrap(err, "begin order transaction")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return errs.Wrap(err, "save order")
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.Wrap(err, "commit order")
	}
	return nil
}

// publish announces a committed order. The order is already durable, so a
// failure here is logged and does not fail the request.
func (h *CreateOrderCommandHandler) publish(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.OrderCreated(ctx, o); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order created event",
			"number", o.Number(), "error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}
