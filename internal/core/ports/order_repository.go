// Package ports defines the collaborator interfaces the order workflow
// depends on. Adapters under internal/adapters implement them; the
// application layer only ever sees these contracts.
//
// Lookups report absent rows as errs.ObjectNotFoundError so callers can tell
// "not found" apart from infrastructure failures with errors.Is.
package ports

import (
	"context"

	"store/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Reads go through the query side and are not part of this contract.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error
}
