package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/user"
)

// UpdateOrderCommandHandler edits an existing order. Staff only.
//
// The order is checked against the products and closing periods as they are now, not as
// they were when it was placed.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewUpdateOrderCommand(orderID, details)
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("order update failed: %w", err)
//	}
//	// Stored order now carries the new details and the original client
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
// Requires an OrderUoWFactory for transactional persistence and a Clock for the date checks.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle checks that caller is staff, then loads the order, applies the new details to a
// copy and saves it in one transaction. Returns errs.ErrObjectNotFound for an unknown id
// and order.ErrInvalidOrder when the new details break an order rule.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, caller *user.User, cmd UpdateOrderCommand) error {
	return authorization.RequireAdminExec(ctx, caller, cmd, h.handle)
}

func (h *UpdateOrderCommandHandler) handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	snapshot, err := loadOrderSnapshot(ctx, uow, h.clock)
	if err != nil {
		return err
	}

	updated := order.Copy(existing)
	if err = updated.UpdateWith(cmd.Details(), snapshot); err != nil {
		return err
	}

	if _, err = orderRepo.Save(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
