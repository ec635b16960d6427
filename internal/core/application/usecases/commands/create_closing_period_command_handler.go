package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/user"
)

// CreateClosingPeriodCommandHandler adds a closing period. Staff only.
// Periods may overlap; orders are rejected on any day covered by at least one of them.
//
// Example:
//
//	handler := NewCreateClosingPeriodCommandHandler(uowFactory, clock)
//	cmd := NewCreateClosingPeriodCommand(start, end)
//
//	id, err := handler.Handle(ctx, caller, cmd)
//	if errors.Is(err, closingperiod.ErrInvalidClosingPeriod) {
//	    return fmt.Errorf("closing period rejected: %w", err)
//	}
//	// Orders on days from start to end are now refused
type CreateClosingPeriodCommandHandler struct {
	uowFactory ClosingPeriodUoWFactory
	clock      kernel.Clock
}

// NewCreateClosingPeriodCommandHandler creates a handler for closing period creation.
// Requires a ClosingPeriodUoWFactory for transactional persistence and a Clock that
// decides which start dates are in the past.
func NewCreateClosingPeriodCommandHandler(
	uowFactory ClosingPeriodUoWFactory,
	clock kernel.Clock,
) CreateClosingPeriodCommandHandler {
	return CreateClosingPeriodCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle checks that caller is staff, validates the period against the business clock and stores it.
// Returns the id assigned by the repository.
func (h *CreateClosingPeriodCommandHandler) Handle(
	ctx context.Context,
	caller *user.User,
	cmd CreateClosingPeriodCommand,
) (kernel.ClosingPeriodID, error) {
	return authorization.RequireAdmin(ctx, caller, cmd, h.handle)
}

func (h *CreateClosingPeriodCommandHandler) handle(
	ctx context.Context,
	cmd CreateClosingPeriodCommand,
) (kernel.ClosingPeriodID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cp, err := closingperiod.NewClosingPeriod(cmd.StartDate(), cmd.EndDate(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.ClosingPeriodRepository().Save(ctx, cp)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
