package product_test

import (
	"testing"

	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create product with valid data", func(t *testing.T) {
		p, err := product.NewProduct(id, "Mouse", decimal.RequireFromString("10.50"), true)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Mouse", p.Title())
		assert.True(t, p.Price().Equal(decimal.RequireFromString("10.5")))
		assert.True(t, p.Active())
	})

	t.Run("should allow free products", func(t *testing.T) {
		p, err := product.NewProduct(id, "Sticker", decimal.Zero, true)

		require.NoError(t, err)
		assert.True(t, p.Price().IsZero())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Mouse", decimal.NewFromInt(10), true)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject empty title", func(t *testing.T) {
		_, err := product.NewProduct(id, "", decimal.NewFromInt(10), true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(id, "Mouse", decimal.NewFromInt(-1), true)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}
