package order_test

import (
	"regexp"
	"testing"
	"time"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"
	"store/internal/pkg/notification"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("12345678911", "Bruce Wayne", "bruce@wayne.com")
	require.NoError(t, err)
	return c
}

func newProduct(t *testing.T, title, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), title, dec(price), true)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	t.Run("should start empty in WaitingPayment", func(t *testing.T) {
		c := newCustomer(t)

		o := order.NewOrder(c, dec("3"), nil, placedAt)

		assert.Same(t, c, o.Customer())
		assert.True(t, o.DeliveryFee().Equal(dec("3")))
		assert.Nil(t, o.Discount())
		assert.Equal(t, order.WaitingPayment, o.Status())
		assert.Equal(t, placedAt, o.Date())
		assert.Empty(t, o.Items())
		assert.True(t, o.Total().Equal(dec("3")))
	})

	t.Run("should generate short upper-case number", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)

		assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), o.Number())
	})

	t.Run("should generate distinct numbers", func(t *testing.T) {
		c := newCustomer(t)

		a := order.NewOrder(c, decimal.Zero, nil, placedAt)
		b := order.NewOrder(c, decimal.Zero, nil, placedAt)

		assert.NotEqual(t, a.Number(), b.Number())
	})

	t.Run("should surface missing customer as notification", func(t *testing.T) {
		o := order.NewOrder(nil, decimal.Zero, nil, placedAt)
		o.AddItem(newProduct(t, "Mouse", "10"), 1)

		want := notification.Notifications{
			notification.New(order.KeyCustomer, order.MsgCustomerNotFound),
		}
		if diff := cmp.Diff(want, o.Notifications()); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, o.IsValid())
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append item at current product price", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		p := newProduct(t, "Mouse", "10.50")

		o.AddItem(p, 2)

		items := o.Items()
		require.Len(t, items, 1)
		assert.Same(t, p, items[0].Product())
		assert.Equal(t, 2, items[0].Quantity())
		assert.True(t, items[0].Price().Equal(dec("10.50")))
		assert.True(t, items[0].Total().Equal(dec("21")))
		assert.True(t, o.IsValid())
	})

	t.Run("should keep insertion order", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		a := newProduct(t, "Mouse", "10")
		b := newProduct(t, "Keyboard", "20")

		o.AddItem(a, 1)
		o.AddItem(b, 1)

		items := o.Items()
		require.Len(t, items, 2)
		assert.Same(t, a, items[0].Product())
		assert.Same(t, b, items[1].Product())
	})

	t.Run("should reject nil product", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)

		o.AddItem(nil, 1)

		assert.Empty(t, o.Items())
		assert.Contains(t, o.Notifications(), notification.New(order.KeyItem, "product not found"))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		p := newProduct(t, "Mouse", "10")

		o.AddItem(p, 0)
		o.AddItem(p, -3)

		assert.Empty(t, o.Items())
		notes := o.Notifications()
		require.Len(t, notes, 3)
		assert.Equal(t, order.KeyItem, notes[0].Key)
		assert.Contains(t, notes[0].Message, "0 is not greater than 0")
		assert.Contains(t, notes[1].Message, "-3 is not greater than 0")
		assert.Equal(t, notification.New(order.KeyItems, order.MsgNoItems), notes[2])
	})

	t.Run("should not discard earlier items on failure", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		o.AddItem(newProduct(t, "Mouse", "10"), 1)

		o.AddItem(nil, 1)

		assert.Len(t, o.Items(), 1)
		assert.True(t, o.Total().Equal(dec("10")))
		assert.False(t, o.IsValid())
	})

	t.Run("should not expose internal item slice", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		o.AddItem(newProduct(t, "Mouse", "10"), 1)

		items := o.Items()
		items[0] = order.Item{}

		assert.Equal(t, 1, o.Items()[0].Quantity())
	})
}

func TestOrder_Notifications(t *testing.T) {
	t.Run("empty order is invalid", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)

		notes := o.Notifications()

		assert.Equal(t, notification.Notifications{notification.New(order.KeyItems, order.MsgNoItems)}, notes)
		assert.False(t, o.IsValid())
	})

	t.Run("order where every product failed reports both rules", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		o.AddItem(nil, 1)
		o.AddItem(nil, 2)

		notes := o.Notifications()

		assert.Len(t, notes, 3)
		assert.True(t, notes.HasKey(order.KeyItem))
		assert.True(t, notes.HasKey(order.KeyItems))
	})

	t.Run("reading twice does not accumulate", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)

		first := o.Notifications()
		second := o.Notifications()

		assert.Equal(t, first, second)
		assert.Len(t, second, 1)
	})

	t.Run("returned set is a copy", func(t *testing.T) {
		o := order.NewOrder(nil, decimal.Zero, nil, placedAt)
		o.AddItem(newProduct(t, "Mouse", "10"), 1)

		notes := o.Notifications()
		notes.Add("Extra", "appended by caller")

		assert.Len(t, o.Notifications(), 1)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum items and add fee", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), dec("3"), nil, placedAt)

		o.AddItem(newProduct(t, "p1", "10"), 2)
		o.AddItem(newProduct(t, "p2", "5"), 1)

		assert.True(t, o.Subtotal().Equal(dec("25")))
		assert.True(t, o.Total().Equal(dec("28")), "got %s", o.Total())
	})

	t.Run("should recompute on every addition", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), dec("3"), nil, placedAt)

		o.AddItem(newProduct(t, "p1", "10"), 2)
		assert.True(t, o.Total().Equal(dec("23")))

		o.AddItem(newProduct(t, "p2", "5"), 1)
		assert.True(t, o.Total().Equal(dec("28")))
	})

	t.Run("should avoid binary float drift", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)

		o.AddItem(newProduct(t, "a", "0.1"), 1)
		o.AddItem(newProduct(t, "b", "0.2"), 1)

		assert.Equal(t, "0.3", o.Total().String())
	})

	t.Run("should subtract fixed discount before fee", func(t *testing.T) {
		d, err := discount.NewDiscount("OFF5", discount.Fixed, dec("5"), nil)
		require.NoError(t, err)
		o := order.NewOrder(newCustomer(t), dec("3"), d, placedAt)

		o.AddItem(newProduct(t, "p1", "10"), 2)
		o.AddItem(newProduct(t, "p2", "5"), 1)

		assert.True(t, o.DiscountAmount().Equal(dec("5")))
		assert.True(t, o.Total().Equal(dec("23")))
	})

	t.Run("should subtract percentage discount", func(t *testing.T) {
		d, err := discount.NewDiscount("TEN", discount.Percentage, dec("10"), nil)
		require.NoError(t, err)
		o := order.NewOrder(newCustomer(t), dec("3"), d, placedAt)

		o.AddItem(newProduct(t, "p1", "10"), 2)
		o.AddItem(newProduct(t, "p2", "5"), 1)

		assert.True(t, o.Total().Equal(dec("25.5")), "got %s", o.Total())
	})

	t.Run("should ignore discount expired at placement", func(t *testing.T) {
		expired := placedAt.Add(-time.Minute)
		d, err := discount.NewDiscount("OLD", discount.Fixed, dec("5"), &expired)
		require.NoError(t, err)
		o := order.NewOrder(newCustomer(t), dec("3"), d, placedAt)

		o.AddItem(newProduct(t, "p1", "10"), 2)

		assert.True(t, o.DiscountAmount().IsZero())
		assert.True(t, o.Total().Equal(dec("23")))
	})

	t.Run("should never let discount exceed subtotal", func(t *testing.T) {
		d, err := discount.NewDiscount("BIG", discount.Fixed, dec("100"), nil)
		require.NoError(t, err)
		o := order.NewOrder(newCustomer(t), dec("3"), d, placedAt)

		o.AddItem(newProduct(t, "p1", "10"), 1)

		assert.True(t, o.Total().Equal(dec("3")))
	})

	t.Run("should keep captured price", func(t *testing.T) {
		o := order.NewOrder(newCustomer(t), decimal.Zero, nil, placedAt)
		p := newProduct(t, "p1", "10")

		o.AddItem(p, 1)

		assert.True(t, o.Items()[0].Price().Equal(p.Price()))
	})
}
