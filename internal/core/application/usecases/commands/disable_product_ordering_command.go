package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

// ErrDisableProductOrderingCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrDisableProductOrderingCommandIsNotConstructed = errors.New(
	"DisableProductOrderingCommand must be created via NewDisableProductOrderingCommand constructor",
)

// DisableProductOrderingCommand closes the public order form. Staff can still edit orders.
//
// Example:
//
//	if err := handler.Handle(ctx, caller, NewDisableProductOrderingCommand()); err != nil {
//	    return fmt.Errorf("failed to close ordering: %w", err)
//	}
//	// CreateOrderCommandHandler now returns ErrProductOrderingDisabled
type DisableProductOrderingCommand struct {
	guard guard.ConstructorGuard
}

// NewDisableProductOrderingCommand creates a command that turns ordering off.
func NewDisableProductOrderingCommand() DisableProductOrderingCommand {
	return DisableProductOrderingCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDisableProductOrderingCommandIsNotConstructed if validation fails.
func (c DisableProductOrderingCommand) Validate() error {
	return c.guard.Validate(ErrDisableProductOrderingCommandIsNotConstructed)
}
