package ports

import (
	"context"

	"store/internal/core/domain/model/order"
)

// OrderEventPublisher announces persisted orders to downstream consumers.
type OrderEventPublisher interface {
	// OrderCreated is called after the order has been committed.
	OrderCreated(ctx context.Context, aggregate *order.Order) error
}
