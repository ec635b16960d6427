package ports

import (
	"context"

	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"
)

// ClosingPeriodRepository defines the persistence contract for closing periods.
type ClosingPeriodRepository interface {
	Save(ctx context.Context, aggregate *closingperiod.ClosingPeriod) (kernel.ClosingPeriodID, error)

	// Get returns *errs.ObjectNotFoundError when no closing period has this id.
	Get(ctx context.Context, id kernel.ClosingPeriodID) (*closingperiod.ClosingPeriod, error)

	// GetAll returns every closing period ordered by start date.
	GetAll(ctx context.Context) ([]*closingperiod.ClosingPeriod, error)

	// Delete returns *errs.ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id kernel.ClosingPeriodID) error
}
