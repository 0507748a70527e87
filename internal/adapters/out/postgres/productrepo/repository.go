package productrepo

import (
	"context"

	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add stores a catalog entry.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get loads the active products among ids with a single query.
// Unknown and inactive ids are omitted from the result.
func (r *GormProductRepository) Get(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", raw, true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
