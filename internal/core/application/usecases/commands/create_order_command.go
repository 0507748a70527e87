package commands

import (
	"errors"
	"fmt"
	"strings"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/guard"
	"store/internal/pkg/notification"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateOrderItem is one requested line: a catalog product and how many units.
type CreateOrderItem struct {
	Product  kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a customer's request to place an order.
// It only carries raw identifiers; the handler resolves them.
//
// Unlike most commands, construction never fails. Business-rule violations
// are reported by Validate as notifications so the caller can show every
// problem at once.
//
// Example:
//
//	cmd := NewCreateOrderCommand("12345678911", "13411080", "WELCOME", []CreateOrderItem{
//	    {Product: mouseID, Quantity: 1},
//	})
//	if notes := cmd.Validate(); notes.IsInvalid() {
//	    return notes
//	}
type CreateOrderCommand struct {
	customer  string
	zipCode   string
	promoCode string
	items     []CreateOrderItem

	guard guard.ConstructorGuard
}

// createOrderRules mirrors the command with the validation tags applied to it.
// Field names double as notification keys.
type createOrderRules struct {
	Customer string                `validate:"required,len=11"`
	ZipCode  string                `validate:"required"`
	Items    []createOrderItemRule `validate:"required,min=1,dive"`
}

type createOrderItemRule struct {
	Quantity int `validate:"gt=0"`
}

// NewCreateOrderCommand creates a command. The items slice is copied.
func NewCreateOrderCommand(customer, zipCode, promoCode string, items []CreateOrderItem) CreateOrderCommand {
	return CreateOrderCommand{
		customer:  customer,
		zipCode:   zipCode,
		promoCode: promoCode,
		items:     append([]CreateOrderItem(nil), items...),
		guard:     guard.NewConstructorGuard(),
	}
}

// IsConstructed ensures the command was created through the constructor.
func (c CreateOrderCommand) IsConstructed() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Validate checks the business rules and returns one notification per
// violated rule, keyed by field path (for example "Items[1].Quantity").
// It is pure: every call returns a fresh set computed from the current input.
//
// Rules:
//   - Customer is required and must be exactly 11 characters
//   - ZipCode is required; unknown zip codes are not rejected here
//   - Items must contain at least one entry
//   - every item Quantity must be greater than 0
func (c CreateOrderCommand) Validate() notification.Notifications {
	rules := createOrderRules{
		Customer: c.customer,
		ZipCode:  c.zipCode,
	}
	if c.items != nil {
		rules.Items = make([]createOrderItemRule, len(c.items))
		for i, item := range c.items {
			rules.Items[i] = createOrderItemRule{Quantity: item.Quantity}
		}
	}

	var notes notification.Notifications

	err := validate.Struct(rules)
	if err == nil {
		return notes
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		notes.Add("Command", err.Error())
		return notes
	}

	for _, fe := range fieldErrs {
		notes.Add(fieldKey(fe), fieldMessage(fe))
	}
	return notes
}

// Notifications implements notification.Notifiable.
func (c CreateOrderCommand) Notifications() notification.Notifications {
	return c.Validate()
}

// Customer returns the customer's document number.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

func (c CreateOrderCommand) ZipCode() string {
	return c.zipCode
}

// PromoCode is empty when no promotion was requested.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return append([]CreateOrderItem(nil), c.items...)
}

// ProductIDs returns the distinct product ids referenced by the items, in
// first-seen order.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.Product]; ok {
			continue
		}
		seen[item.Product] = struct{}{}
		ids = append(ids, item.Product)
	}
	return ids
}

// fieldKey strips the rules struct name from the namespace:
// "createOrderRules.Items[0].Quantity" becomes "Items[0].Quantity".
func fieldKey(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "Items" {
			return "order must contain at least one item"
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "len":
		if fe.Field() == "Customer" {
			return fmt.Sprintf("customer document must have exactly %d characters", customer.DocumentLength)
		}
		return fmt.Sprintf("%s must have exactly %s characters", fe.Field(), fe.Param())
	case "min":
		return "order must contain at least one item"
	case "gt":
		return fmt.Sprintf("quantity must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
