package ports

import (
	"context"
	"time"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// CustomerRepository resolves customers by document number.
type CustomerRepository interface {
	// Get returns errs.ObjectNotFoundError when no customer has the document.
	Get(ctx context.Context, document string) (*customer.Customer, error)
}

// DeliveryFeeRepository resolves the shipping fee charged for a zip code.
type DeliveryFeeRepository interface {
	// Get returns errs.ObjectNotFoundError when the zip code has no fee configured.
	Get(ctx context.Context, zipCode string) (decimal.Decimal, error)
}

// DiscountRepository resolves promotional codes.
type DiscountRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown codes. Expired
	// discounts are still returned; Discount.Apply neutralizes them.
	Get(ctx context.Context, code string) (*discount.Discount, error)

	// DeleteExpired removes every discount whose expiry is at or before now
	// and reports how many rows were deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ProductRepository resolves active catalog products in one batch.
type ProductRepository interface {
	// Get returns the active products matching ids in no particular order.
	// Unknown or inactive ids are silently omitted, so the result may be a
	// subset of ids. It never returns ObjectNotFoundError.
	Get(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
