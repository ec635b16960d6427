package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/user"
)

// PurgeExpiredClosingPeriodsCommandHandler is run by the nightly job with the system
// admin account. A period ending today is kept.
//
// Example:
//
//	handler := NewPurgeExpiredClosingPeriodsCommandHandler(uowFactory, clock)
//	purged, err := handler.Handle(ctx, systemAdmin, NewPurgeExpiredClosingPeriodsCommand())
//	if err != nil {
//	    return err
//	}
//	// purged periods are gone; the remaining ones end today or later
type PurgeExpiredClosingPeriodsCommandHandler struct {
	uowFactory ClosingPeriodUoWFactory
	clock      kernel.Clock
}

// NewPurgeExpiredClosingPeriodsCommandHandler creates a handler for the nightly purge.
// Requires a ClosingPeriodUoWFactory for transactional persistence and a Clock for "today".
func NewPurgeExpiredClosingPeriodsCommandHandler(
	uowFactory ClosingPeriodUoWFactory,
	clock kernel.Clock,
) PurgeExpiredClosingPeriodsCommandHandler {
	return PurgeExpiredClosingPeriodsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle checks that caller is staff and deletes every expired period in one transaction.
// Returns the number of deleted periods.
func (h *PurgeExpiredClosingPeriodsCommandHandler) Handle(
	ctx context.Context,
	caller *user.User,
	cmd PurgeExpiredClosingPeriodsCommand,
) (int, error) {
	return authorization.RequireAdmin(ctx, caller, cmd, h.handle)
}

func (h *PurgeExpiredClosingPeriodsCommandHandler) handle(
	ctx context.Context,
	cmd PurgeExpiredClosingPeriodsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ClosingPeriodRepository()
	closingPeriods, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	purged := 0
	for _, cp := range closingPeriods {
		if !cp.HasEndedBefore(now) {
			continue
		}
		if err = repo.Delete(ctx, cp.ID()); err != nil {
			return 0, err
		}
		purged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
