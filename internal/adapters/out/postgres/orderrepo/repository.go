package orderrepo

import (
	"context"
	"fmt"

	"store/internal/core/domain/model/order"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrOrderIsInvalid is returned when Add receives an order that still
// carries notifications.
var ErrOrderIsInvalid = errs.NewValueIsInvalidError("order")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items. Items are written by GORM's
// association handling in the same statement batch.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if !aggregate.IsValid() {
		return fmt.Errorf("%w: %d notifications", ErrOrderIsInvalid, len(aggregate.Notifications()))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}
