package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/feature"
	"bakery/internal/core/domain/model/user"
)

// DisableProductOrderingCommandHandler turns the PRODUCT_ORDERING toggle off. Staff only.
// Disabling a disabled toggle succeeds.
//
// Example:
//
//	handler := NewDisableProductOrderingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, caller, NewDisableProductOrderingCommand()); err != nil {
//	    return err
//	}
type DisableProductOrderingCommandHandler struct {
	uowFactory FeatureUoWFactory
}

// NewDisableProductOrderingCommandHandler creates a handler that closes ordering.
// Requires a FeatureUoWFactory for transactional persistence.
func NewDisableProductOrderingCommandHandler(uowFactory FeatureUoWFactory) DisableProductOrderingCommandHandler {
	return DisableProductOrderingCommandHandler{uowFactory: uowFactory}
}

// Handle checks that caller is staff and stores the toggle as disabled.
func (h *DisableProductOrderingCommandHandler) Handle(
	ctx context.Context,
	caller *user.User,
	cmd DisableProductOrderingCommand,
) error {
	return authorization.RequireAdminExec(ctx, caller, cmd, func(ctx context.Context, cmd DisableProductOrderingCommand) error {
		if err := cmd.Validate(); err != nil {
			return err
		}
		return toggleProductOrdering(ctx, h.uowFactory, (*feature.Feature).Disable)
	})
}
