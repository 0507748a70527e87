// Package productrepo persists the product catalog with GORM and offers an
// in-memory read-through cache in front of it.
package productrepo

import (
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row. Active is indexed because catalog
// lookups only ever read active products.
type ProductDTO struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title  string          `gorm:"not null"`
	Price  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Active bool            `gorm:"not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID().Bytes(),
		Title:  p.Title(),
		Price:  p.Price(),
		Active: p.Active(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Title, dto.Price, dto.Active)
}
