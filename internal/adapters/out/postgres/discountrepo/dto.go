// Package discountrepo persists promotional discounts with GORM.
package discountrepo

import (
	"time"

	"store/internal/core/domain/model/discount"

	"github.com/shopspring/decimal"
)

// DiscountDTO is the discounts table row. ExpiresAt is indexed for the purge job.
type DiscountDTO struct {
	Code      string          `gorm:"type:varchar(32);primaryKey"`
	Kind      string          `gorm:"type:varchar(16);not null"`
	Value     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpiresAt *time.Time      `gorm:"index"`
}

func (DiscountDTO) TableName() string {
	return "discounts"
}

func fromDomain(d *discount.Discount) DiscountDTO {
	return DiscountDTO{
		Code:      d.Code(),
		Kind:      d.Kind().String(),
		Value:     d.Value(),
		ExpiresAt: d.ExpiresAt(),
	}
}

func toDomain(dto DiscountDTO) (*discount.Discount, error) {
	kind, err := discount.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return discount.NewDiscount(dto.Code, kind, dto.Value, dto.ExpiresAt)
}
