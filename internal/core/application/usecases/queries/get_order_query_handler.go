package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// GetOrderQueryHandler reads orders from the tables written by the order
// repository.
type GetOrderQueryHandler struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewGetOrderQueryHandler creates a handler backed by a sqlx connection.
func NewGetOrderQueryHandler(db *sqlx.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type orderRow struct {
	Number           string          `db:"number"`
	CustomerDocument string          `db:"customer_document"`
	Date             time.Time       `db:"date"`
	Status           string          `db:"status"`
	DeliveryFee      decimal.Decimal `db:"delivery_fee"`
	DiscountCode     sql.NullString  `db:"discount_code"`
	DiscountAmount   decimal.Decimal `db:"discount_amount"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	Total            decimal.Decimal `db:"total"`
}

type itemRow struct {
	ProductID uuid.UUID       `db:"product_id"`
	Title     string          `db:"title"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

// Handle returns the order with its items in insertion order, or
// errs.ObjectNotFoundError for an unknown number.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	sqlStr, args := h.qb.Select(
		"number", "customer_document", "date", "status", "delivery_fee",
		"discount_code", "discount_amount", "subtotal", "total").
		From("orders").
		Where(sq.Eq{"number": query.Number()}).
		MustSql()

	var row orderRow
	err := h.db.GetContext(ctx, &row, sqlStr, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.Number())
	}
	if err != nil {
		return GetOrderQueryResponse{}, errs.Wrap(err, "select order")
	}

	sqlStr, args = h.qb.Select("product_id", "title", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_number": query.Number()}).
		OrderBy("line").
		MustSql()

	var rows []itemRow
	if err = h.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return GetOrderQueryResponse{}, errs.Wrap(err, "select order items")
	}

	resp := GetOrderQueryResponse{
		Number:         row.Number,
		Customer:       row.CustomerDocument,
		Date:           row.Date.UTC(),
		Status:         row.Status,
		DeliveryFee:    row.DeliveryFee,
		DiscountAmount: row.DiscountAmount,
		Subtotal:       row.Subtotal,
		Total:          row.Total,
		Items:          make([]GetOrderQueryItemResponse, 0, len(rows)),
	}
	if row.DiscountCode.Valid {
		code := row.DiscountCode.String
		resp.DiscountCode = &code
	}

	for _, item := range rows {
		productID, idErr := kernel.UUIDFromBytes(item.ProductID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.Items = append(resp.Items, GetOrderQueryItemResponse{
			Product:  productID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	return resp, nil
}
