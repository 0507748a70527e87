package discountrepo

import (
	"context"
	"errors"
	"time"

	"store/internal/core/domain/model/discount"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDiscountRepository implements ports.DiscountRepository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// Add stores a new discount.
func (r *GormDiscountRepository) Add(ctx context.Context, d *discount.Discount) error {
	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a discount by code, expired or not.
func (r *GormDiscountRepository) Get(ctx context.Context, code string) (*discount.Discount, error) {
	var dto DiscountDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteExpired removes discounts whose expiry is at or before now.
// Discounts without expiry are never removed.
func (r *GormDiscountRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now.UTC()).
		Delete(&DiscountDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
