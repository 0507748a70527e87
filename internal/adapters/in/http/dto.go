package http

import (
	"time"

	"store/internal/core/application/usecases/queries"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-business error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the POST /api/v1/orders request body.
type NewOrder struct {
	Customer  string         `json:"customer"`
	ZipCode   string         `json:"zipCode"`
	PromoCode string         `json:"promoCode"`
	Items     []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	Product  kernel.UUID `json:"product"`
	Quantity int         `json:"quantity"`
}

// Order is the order representation returned by both the create and get endpoints.
type Order struct {
	Number       string          `json:"number"`
	Customer     string          `json:"customer"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	DiscountCode *string         `json:"discountCode,omitempty"`
	Discount     decimal.Decimal `json:"discount"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Total        decimal.Decimal `json:"total"`
	Items        []OrderItem     `json:"items"`
}

type OrderItem struct {
	Product  kernel.UUID     `json:"product"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

func orderFromDomain(o *order.Order) Order {
	resp := Order{
		Number:      o.Number(),
		Date:        o.Date(),
		Status:      o.Status().String(),
		DeliveryFee: o.DeliveryFee(),
		Discount:    o.DiscountAmount(),
		Subtotal:    o.Subtotal(),
		Total:       o.Total(),
	}
	if c := o.Customer(); c != nil {
		resp.Customer = c.Document()
	}
	if d := o.Discount(); d != nil {
		code := d.Code()
		resp.DiscountCode = &code
	}

	items := o.Items()
	resp.Items = make([]OrderItem, 0, len(items))
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItem{
			Product:  item.Product().ID(),
			Title:    item.Product().Title(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Total:    item.Total(),
		})
	}
	return resp
}

func orderFromQuery(q queries.GetOrderQueryResponse) Order {
	resp := Order{
		Number:       q.Number,
		Customer:     q.Customer,
		Date:         q.Date,
		Status:       q.Status,
		DeliveryFee:  q.DeliveryFee,
		DiscountCode: q.DiscountCode,
		Discount:     q.DiscountAmount,
		Subtotal:     q.Subtotal,
		Total:        q.Total,
		Items:        make([]OrderItem, 0, len(q.Items)),
	}
	for _, item := range q.Items {
		resp.Items = append(resp.Items, OrderItem{
			Product:  item.Product,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}
	return resp
}
