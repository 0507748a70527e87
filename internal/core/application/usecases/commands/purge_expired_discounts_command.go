package commands

import (
	"errors"

	"store/internal/pkg/guard"
)

var (
	ErrPurgeExpiredDiscountsCommandIsNotConstructed = errors.New(
		"PurgeExpiredDiscountsCommand must be created via NewPurgeExpiredDiscountsCommand constructor",
	)
)

// PurgeExpiredDiscountsCommand removes promo codes that can no longer apply.
// Expired discounts never reduce a total, so deleting them only keeps the
// table small.
type PurgeExpiredDiscountsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeExpiredDiscountsCommand() PurgeExpiredDiscountsCommand {
	return PurgeExpiredDiscountsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredDiscountsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredDiscountsCommandIsNotConstructed)
}
