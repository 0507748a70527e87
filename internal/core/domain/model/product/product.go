// Package product holds the catalog Product entity. Orders copy a product's
// price into each line item at the moment the item is added.
package product

import (
	"errors"
	"fmt"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Product struct {
	id     kernel.UUID
	title  string
	price  decimal.Decimal
	active bool
}

// NewProduct builds a catalog entry. Price must not be negative.
func NewProduct(id kernel.UUID, title string, price decimal.Decimal, active bool) (*Product, error) {
	p := &Product{active: active}

	if err := errors.Join(
		p.setID(id),
		p.setTitle(title),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Title() string {
	return p.title
}

// Price is the current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Active reports whether the product can still be sold.
func (p *Product) Active() bool {
	return p.active
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}
