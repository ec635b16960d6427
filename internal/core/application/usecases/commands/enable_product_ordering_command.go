package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

// ErrEnableProductOrderingCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrEnableProductOrderingCommandIsNotConstructed = errors.New(
	"EnableProductOrderingCommand must be created via NewEnableProductOrderingCommand constructor",
)

// EnableProductOrderingCommand opens the public order form.
//
// Example:
//
//	if err := handler.Handle(ctx, caller, NewEnableProductOrderingCommand()); err != nil {
//	    return fmt.Errorf("failed to open ordering: %w", err)
//	}
type EnableProductOrderingCommand struct {
	guard guard.ConstructorGuard
}

// NewEnableProductOrderingCommand creates a command that turns ordering on.
func NewEnableProductOrderingCommand() EnableProductOrderingCommand {
	return EnableProductOrderingCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrEnableProductOrderingCommandIsNotConstructed if validation fails.
func (c EnableProductOrderingCommand) Validate() error {
	return c.guard.Validate(ErrEnableProductOrderingCommandIsNotConstructed)
}
