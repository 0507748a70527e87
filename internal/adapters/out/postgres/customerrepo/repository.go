package customerrepo

import (
	"context"
	"errors"

	"store/internal/core/domain/model/customer"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add registers a customer.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a customer by document number.
func (r *GormCustomerRepository) Get(ctx context.Context, document string) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "document = ?", document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", document)
		}
		return nil, err
	}

	return toDomain(dto)
}
