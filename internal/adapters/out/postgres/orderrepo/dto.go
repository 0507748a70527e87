// Package orderrepo maps order aggregates onto the orders and order_items
// tables. Orders are write-only here; reads go through the sqlx query side.
package orderrepo

import (
	"time"

	"store/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Money columns store the values computed
// by the aggregate at placement time so reads never recompute them.
type OrderDTO struct {
	Number           string          `gorm:"type:varchar(8);primaryKey"`
	CustomerDocument string          `gorm:"type:varchar(11);not null;index"`
	Date             time.Time       `gorm:"not null"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountCode     *string         `gorm:"type:varchar(32)"`
	DiscountAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items            []OrderItemDTO  `gorm:"foreignKey:OrderNumber;references:Number;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. Line keeps the insertion order.
type OrderItemDTO struct {
	OrderNumber string          `gorm:"type:varchar(8);primaryKey"`
	Line        int             `gorm:"primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	Title       string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var discountCode *string
	if d := o.Discount(); d != nil {
		code := d.Code()
		discountCode = &code
	}

	var document string
	if c := o.Customer(); c != nil {
		document = c.Document()
	}

	items := o.Items()
	dtoItems := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtoItems = append(dtoItems, OrderItemDTO{
			OrderNumber: o.Number(),
			Line:        i + 1,
			ProductID:   item.Product().ID().Bytes(),
			Title:       item.Product().Title(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return OrderDTO{
		Number:           o.Number(),
		CustomerDocument: document,
		Date:             o.Date(),
		Status:           o.Status().String(),
		DeliveryFee:      o.DeliveryFee(),
		DiscountCode:     discountCode,
		DiscountAmount:   o.DiscountAmount(),
		Subtotal:         o.Subtotal(),
		Total:            o.Total(),
		Items:            dtoItems,
	}
}
