// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"store/internal/core/domain/model/customer"
)

// CustomerDTO is the customers table row. The document is the natural key.
type CustomerDTO struct {
	Document string `gorm:"type:varchar(11);primaryKey"`
	Name     string `gorm:"not null"`
	Email    string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		Document: c.Document(),
		Name:     c.Name(),
		Email:    c.Email(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.NewCustomer(dto.Document, dto.Name, dto.Email)
}
