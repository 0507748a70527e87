package postgres

import (
	"store/internal/adapters/out/postgres/customerrepo"
	"store/internal/adapters/out/postgres/deliveryfeerepo"
	"store/internal/adapters/out/postgres/discountrepo"
	"store/internal/adapters/out/postgres/orderrepo"
	"store/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents before children.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&deliveryfeerepo.DeliveryFeeDTO{},
		&discountrepo.DiscountDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
