package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

// ErrDeleteClosingPeriodCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrDeleteClosingPeriodCommandIsNotConstructed = errors.New(
	"DeleteClosingPeriodCommand must be created via NewDeleteClosingPeriodCommand constructor",
)

// DeleteClosingPeriodCommand reopens the shop on the days of one closing period.
//
// Example:
//
//	cmd, err := NewDeleteClosingPeriodCommand(7)
//	if err != nil {
//	    return fmt.Errorf("invalid closing period id: %w", err)
//	}
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("failed to delete closing period: %w", err)
//	}
type DeleteClosingPeriodCommand struct {
	closingPeriodID kernel.ClosingPeriodID

	guard guard.ConstructorGuard
}

// NewDeleteClosingPeriodCommand creates a command to delete a closing period.
// Returns a ValueIsInvalid error when closingPeriodID is not positive.
func NewDeleteClosingPeriodCommand(closingPeriodID kernel.ClosingPeriodID) (DeleteClosingPeriodCommand, error) {
	if err := validateID("closingPeriodId", closingPeriodID); err != nil {
		return DeleteClosingPeriodCommand{}, err
	}

	return DeleteClosingPeriodCommand{
		closingPeriodID: closingPeriodID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteClosingPeriodCommandIsNotConstructed if validation fails.
func (c DeleteClosingPeriodCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClosingPeriodCommandIsNotConstructed)
}

// ClosingPeriodID returns the identifier of the period to delete.
func (c DeleteClosingPeriodCommand) ClosingPeriodID() kernel.ClosingPeriodID {
	return c.closingPeriodID
}
