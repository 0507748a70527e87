// Package discount holds promotional codes that reduce an order's subtotal.
//
// A discount is either a fixed amount or a percentage of the subtotal and may
// carry an expiry. Expired discounts stay loadable until they are purged but
// never reduce a total.
package discount

import (
	"errors"
	"fmt"
	"time"

	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Kind selects how a discount's value is applied to a subtotal.
type Kind int

const (
	Unknown Kind = iota
	// Fixed subtracts Value from the subtotal, never below zero.
	Fixed
	// Percentage subtracts Value percent of the subtotal.
	Percentage
)

var hundred = decimal.NewFromInt(100)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Percentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// KindFromString is the inverse of Kind.String for the valid kinds.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "fixed":
		return Fixed, nil
	case "percentage":
		return Percentage, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a discount kind", s))
	}
}

type Discount struct {
	code      string
	kind      Kind
	value     decimal.Decimal
	expiresAt *time.Time
}

// NewDiscount builds a discount. A nil expiresAt never expires. Fixed values
// must not be negative; percentages must lie in [0, 100].
func NewDiscount(code string, kind Kind, value decimal.Decimal, expiresAt *time.Time) (*Discount, error) {
	d := &Discount{}

	if err := errors.Join(
		d.setCode(code),
		d.setValue(kind, value),
	); err != nil {
		return nil, err
	}

	if expiresAt != nil {
		at := expiresAt.UTC()
		d.expiresAt = &at
	}

	return d, nil
}

func (d *Discount) Code() string {
	return d.code
}

func (d *Discount) Kind() Kind {
	return d.kind
}

func (d *Discount) Value() decimal.Decimal {
	return d.value
}

// ExpiresAt returns nil for discounts without expiry.
func (d *Discount) ExpiresAt() *time.Time {
	if d.expiresAt == nil {
		return nil
	}
	at := *d.expiresAt
	return &at
}

// IsExpiredAt reports whether the discount has stopped applying at now.
func (d *Discount) IsExpiredAt(now time.Time) bool {
	return d.expiresAt != nil && !now.Before(*d.expiresAt)
}

// Apply returns the amount to subtract from subtotal at the given instant.
// The result is rounded to cents and never exceeds subtotal. A nil or expired
// discount applies zero.
func (d *Discount) Apply(subtotal decimal.Decimal, now time.Time) decimal.Decimal {
	if d == nil || d.IsExpiredAt(now) || !subtotal.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch d.kind {
	case Fixed:
		amount = d.value
	case Percentage:
		amount = subtotal.Mul(d.value).Div(hundred)
	default:
		return decimal.Zero
	}

	return decimal.Min(amount, subtotal).Round(2)
}

func (d *Discount) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	d.code = code
	return nil
}

func (d *Discount) setValue(kind Kind, value decimal.Decimal) error {
	switch kind {
	case Fixed:
		if value.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is negative", value))
		}
	case Percentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return errs.NewValueIsOutOfRangeError("value", value.String(), 0, 100)
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a discount kind", kind))
	}
	d.kind = kind
	d.value = value
	return nil
}
