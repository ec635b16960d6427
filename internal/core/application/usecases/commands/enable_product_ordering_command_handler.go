package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/feature"
	"bakery/internal/core/domain/model/user"
)

// EnableProductOrderingCommandHandler turns the PRODUCT_ORDERING toggle on. Staff only.
// Enabling an enabled toggle succeeds.
//
// Example:
//
//	handler := NewEnableProductOrderingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, caller, NewEnableProductOrderingCommand()); err != nil {
//	    return err
//	}
//	// Customers can place orders again
type EnableProductOrderingCommandHandler struct {
	uowFactory FeatureUoWFactory
}

// NewEnableProductOrderingCommandHandler creates a handler that opens ordering.
// Requires a FeatureUoWFactory for transactional persistence.
func NewEnableProductOrderingCommandHandler(uowFactory FeatureUoWFactory) EnableProductOrderingCommandHandler {
	return EnableProductOrderingCommandHandler{uowFactory: uowFactory}
}

// Handle checks that caller is staff and stores the toggle as enabled.
func (h *EnableProductOrderingCommandHandler) Handle(
	ctx context.Context,
	caller *user.User,
	cmd EnableProductOrderingCommand,
) error {
	return authorization.RequireAdminExec(ctx, caller, cmd, func(ctx context.Context, cmd EnableProductOrderingCommand) error {
		if err := cmd.Validate(); err != nil {
			return err
		}
		return toggleProductOrdering(ctx, h.uowFactory, (*feature.Feature).Enable)
	})
}
