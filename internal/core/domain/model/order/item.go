package order

import (
	"errors"
	"fmt"

	"store/internal/core/domain/model/product"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is reported when an item references a product the
// catalog could not resolve.
var ErrProductNotFound = errors.New("product not found")

// Item is a single order line. The unit price is copied from the product when
// the item is created so later catalog changes do not alter placed orders.
type Item struct {
	product  *product.Product
	quantity int
	price    decimal.Decimal
}

// NewItem builds an order line for a resolved product.
//
// Returns:
//   - ErrProductNotFound if p is nil
//   - a ValueIsInvalidError if quantity is not positive
func NewItem(p *product.Product, quantity int) (Item, error) {
	if p == nil {
		return Item{}, ErrProductNotFound
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		product:  p,
		quantity: quantity,
		price:    p.Price(),
	}, nil
}

func (i Item) Product() *product.Product {
	return i.product
}

func (i Item) Quantity() int {
	return i.quantity
}

// Price is the unit price captured when the item was added.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Total is Price multiplied by Quantity.
func (i Item) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
