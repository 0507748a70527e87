package order

import (
	"time"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"
	"store/internal/pkg/notification"

	"github.com/shopspring/decimal"
)

// Notification keys and messages raised by the aggregate.
const (
	KeyCustomer = "Customer"
	KeyItem     = "Item"
	KeyItems    = "Items"

	MsgCustomerNotFound = "customer not found"
	MsgNoItems          = "order must contain at least one item"
)

// Order is the aggregate root for a single purchase. It is built once per
// request: the customer, delivery fee and discount are fixed at construction
// and only the item list grows afterwards.
//
// Order follows these invariants:
//   - Customer, delivery fee, discount and date never change after NewOrder
//   - Items are only appended, never removed or replaced
//   - Total always equals Subtotal - DiscountAmount + DeliveryFee
//   - An order without items is invalid even if no item addition failed
//
// Rule violations do not abort construction. They are collected as
// notifications so that every problem can be reported at once; use
// Notifications or IsValid before persisting.
type Order struct {
	number      string
	date        time.Time
	customer    *customer.Customer
	deliveryFee decimal.Decimal
	discount    *discount.Discount
	items       []Item
	status      Status
	total       decimal.Decimal

	// notes holds violations raised while building; the empty-items rule is
	// derived on read and never stored here.
	notes notification.Notifications
}

// NewOrder creates an order in WaitingPayment status with a freshly generated
// number and no items.
//
// Parameters:
//   - c: the resolved customer; nil is recorded as a "Customer" notification
//   - deliveryFee: the fee for the shipping zip code, zero when unknown
//   - d: the resolved discount, nil when no promo code applies
//   - date: the placement time, also used to decide whether d has expired
//
// Example:
//
//	o := order.NewOrder(c, decimal.NewFromInt(3), nil, clock.Now())
//	o.AddItem(mouse, 2)
//	if o.IsValid() {
//	    // persist
//	}
func NewOrder(c *customer.Customer, deliveryFee decimal.Decimal, d *discount.Discount, date time.Time) *Order {
	o := &Order{
		number:      NewNumber(),
		date:        date.UTC(),
		customer:    c,
		deliveryFee: deliveryFee,
		discount:    d,
		status:      WaitingPayment,
	}

	if c == nil {
		o.notes.Add(KeyCustomer, MsgCustomerNotFound)
	}

	o.recalculate()
	return o
}

// NewNumber generates a short human-facing order number: the first eight
// hexadecimal characters of a random UUID, upper-cased.
func NewNumber() string {
	return kernel.NewUUID().ShortCode()
}

// AddItem appends a line for product p with the given quantity and
// recomputes the total. A nil product or a non-positive quantity is recorded
// as an "Item" notification and leaves the order unchanged otherwise.
func (o *Order) AddItem(p *product.Product, quantity int) {
	item, err := NewItem(p, quantity)
	if err != nil {
		o.notes.Add(KeyItem, err.Error())
		return
	}

	o.items = append(o.items, item)
	o.recalculate()
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Date() time.Time {
	return o.date
}

// Customer returns nil when the customer could not be resolved.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// Discount returns nil when no promo code applies.
func (o *Order) Discount() *discount.Discount {
	return o.discount
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal is the sum of every line total before discount and fee.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// DiscountAmount is what the discount takes off the current subtotal.
func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discount.Apply(o.Subtotal(), o.date)
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Notifications implements notification.Notifiable. The result is a fresh
// copy that includes the empty-items rule when no item has been added.
func (o *Order) Notifications() notification.Notifications {
	notes := o.notes.Clone()
	if len(o.items) == 0 {
		notes.Add(KeyItems, MsgNoItems)
	}
	return notes
}

// IsValid reports whether the order can be persisted.
func (o *Order) IsValid() bool {
	return o.Notifications().IsValid()
}

func (o *Order) recalculate() {
	subtotal := o.Subtotal()
	o.total = subtotal.
		Sub(o.discount.Apply(subtotal, o.date)).
		Add(o.deliveryFee).
		Round(2)
}
