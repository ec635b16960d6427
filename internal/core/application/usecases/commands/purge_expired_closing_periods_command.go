package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

// ErrPurgeExpiredClosingPeriodsCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrPurgeExpiredClosingPeriodsCommandIsNotConstructed = errors.New(
	"PurgeExpiredClosingPeriodsCommand must be created via NewPurgeExpiredClosingPeriodsCommand constructor",
)

// PurgeExpiredClosingPeriodsCommand deletes the closing periods that ended before today.
// It carries no data; "today" comes from the handler's clock.
//
// Example:
//
//	purged, err := handler.Handle(ctx, systemAdmin, NewPurgeExpiredClosingPeriodsCommand())
//	if err != nil {
//	    return fmt.Errorf("purge failed: %w", err)
//	}
//	logger.Info("closing periods purged", "count", purged)
type PurgeExpiredClosingPeriodsCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredClosingPeriodsCommand creates a purge command.
func NewPurgeExpiredClosingPeriodsCommand() PurgeExpiredClosingPeriodsCommand {
	return PurgeExpiredClosingPeriodsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredClosingPeriodsCommandIsNotConstructed if validation fails.
func (c PurgeExpiredClosingPeriodsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredClosingPeriodsCommandIsNotConstructed)
}
