package commands

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

// ErrCreateClosingPeriodCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrCreateClosingPeriodCommandIsNotConstructed = errors.New(
	"CreateClosingPeriodCommand must be created via NewCreateClosingPeriodCommand constructor",
)

// CreateClosingPeriodCommand asks for a new closing period. Dates are calendar days
// anchored at noon UTC; a zero date means the field was not supplied and is reported by
// the domain.
//
// Example:
//
//	start, _ := kernel.ParseCalendarDate("2099-12-24")
//	end, _ := kernel.ParseCalendarDate("2099-12-26")
//	cmd := NewCreateClosingPeriodCommand(start, end)
//
//	id, err := handler.Handle(ctx, caller, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to close the shop: %w", err)
//	}
type CreateClosingPeriodCommand struct {
	startDate time.Time
	endDate   time.Time

	guard guard.ConstructorGuard
}

// NewCreateClosingPeriodCommand creates a command for the inclusive range [startDate, endDate].
// Range checks run in the closing period aggregate when the handler runs.
func NewCreateClosingPeriodCommand(startDate, endDate time.Time) CreateClosingPeriodCommand {
	return CreateClosingPeriodCommand{
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateClosingPeriodCommandIsNotConstructed if validation fails.
func (c CreateClosingPeriodCommand) Validate() error {
	return c.guard.Validate(ErrCreateClosingPeriodCommandIsNotConstructed)
}

// StartDate returns the first closed day.
func (c CreateClosingPeriodCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the last closed day.
func (c CreateClosingPeriodCommand) EndDate() time.Time {
	return c.endDate
}
