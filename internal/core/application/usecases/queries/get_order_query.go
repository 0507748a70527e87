// Package queries contains read operations that never modify state.
// Query handlers read straight from the database through sqlx and return
// flat response structs instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"
	"store/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one placed order by its number.
//
// Example:
//
//	query, err := NewGetOrderQuery("1A2B3C4D")
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order number
//	}
type GetOrderQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order number.
func NewGetOrderQuery(number string) (GetOrderQuery, error) {
	if number == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("number")
	}

	return GetOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Number() string {
	return q.number
}

// GetOrderQueryResponse is the stored view of an order. Money values are the
// ones computed when the order was placed.
type GetOrderQueryResponse struct {
	Number         string                      `json:"number"`
	Customer       string                      `json:"customer"`
	Date           time.Time                   `json:"date"`
	Status         string                      `json:"status"`
	DeliveryFee    decimal.Decimal             `json:"deliveryFee"`
	DiscountCode   *string                     `json:"discountCode,omitempty"`
	DiscountAmount decimal.Decimal             `json:"discount"`
	Subtotal       decimal.Decimal             `json:"subtotal"`
	Total          decimal.Decimal             `json:"total"`
	Items          []GetOrderQueryItemResponse `json:"items"`
}

type GetOrderQueryItemResponse struct {
	Product  kernel.UUID     `json:"product"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}
