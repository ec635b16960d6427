package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/user"
)

// DeleteClosingPeriodCommandHandler removes a closing period. Staff only.
//
// Example:
//
//	handler := NewDeleteClosingPeriodCommandHandler(uowFactory)
//	cmd, _ := NewDeleteClosingPeriodCommand(closingPeriodID)
//
//	err := handler.Handle(ctx, caller, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return nil // already gone
//	}
type DeleteClosingPeriodCommandHandler struct {
	uowFactory ClosingPeriodUoWFactory
}

// NewDeleteClosingPeriodCommandHandler creates a handler for closing period deletion.
// Requires a ClosingPeriodUoWFactory for transactional persistence.
func NewDeleteClosingPeriodCommandHandler(uowFactory ClosingPeriodUoWFactory) DeleteClosingPeriodCommandHandler {
	return DeleteClosingPeriodCommandHandler{uowFactory: uowFactory}
}

// Handle checks that caller is staff and deletes the period.
// Returns *errs.ObjectNotFoundError when the period does not exist.
func (h *DeleteClosingPeriodCommandHandler) Handle(
	ctx context.Context,
	caller *user.User,
	cmd DeleteClosingPeriodCommand,
) error {
	return authorization.RequireAdminExec(ctx, caller, cmd, h.handle)
}

func (h *DeleteClosingPeriodCommandHandler) handle(ctx context.Context, cmd DeleteClosingPeriodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ClosingPeriodRepository().Delete(ctx, cmd.ClosingPeriodID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
