// Package deliveryfeerepo stores the shipping fee charged per zip code.
package deliveryfeerepo

import (
	"context"
	"errors"

	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryFeeDTO is the delivery_fees table row.
type DeliveryFeeDTO struct {
	ZipCode string          `gorm:"type:varchar(16);primaryKey"`
	Fee     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (DeliveryFeeDTO) TableName() string {
	return "delivery_fees"
}

// GormDeliveryFeeRepository implements ports.DeliveryFeeRepository using GORM.
type GormDeliveryFeeRepository struct {
	db *gorm.DB
}

func NewGormDeliveryFeeRepository(db *gorm.DB) *GormDeliveryFeeRepository {
	return &GormDeliveryFeeRepository{db: db}
}

// Set creates or replaces the fee for a zip code.
func (r *GormDeliveryFeeRepository) Set(ctx context.Context, zipCode string, fee decimal.Decimal) error {
	dto := DeliveryFeeDTO{ZipCode: zipCode, Fee: fee}
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Get returns the fee configured for zipCode.
func (r *GormDeliveryFeeRepository) Get(ctx context.Context, zipCode string) (decimal.Decimal, error) {
	var dto DeliveryFeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "zip_code = ?", zipCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, errs.NewObjectNotFoundError("zip code", zipCode)
		}
		return decimal.Zero, err
	}

	return dto.Fee, nil
}
