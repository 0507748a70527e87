package commands

import (
	"context"

	"store/internal/core/ports"
	"store/internal/pkg/clock"
	"store/internal/pkg/errs"
)

// PurgeExpiredDiscountsCommandHandler deletes discounts whose expiry is at or
// before the clock's current time.
type PurgeExpiredDiscountsCommandHandler struct {
	discounts ports.DiscountRepository
	clock     clock.Clock
}

func NewPurgeExpiredDiscountsCommandHandler(
	discounts ports.DiscountRepository,
	clk clock.Clock,
) *PurgeExpiredDiscountsCommandHandler {
	return &PurgeExpiredDiscountsCommandHandler{
		discounts: discounts,
		clock:     clk,
	}
}

// Handle returns the number of discounts removed.
func (h *PurgeExpiredDiscountsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredDiscountsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	n, err := h.discounts.DeleteExpired(ctx, h.clock.Now())
	if err != nil {
		return 0, errs.Wrap(err, "delete expired discounts")
	}
	return n, nil
}
