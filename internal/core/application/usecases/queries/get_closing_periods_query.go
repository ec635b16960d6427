package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetClosingPeriodsQueryIsNotConstructed = errors.New(
	"GetClosingPeriodsQuery must be created via NewGetClosingPeriodsQuery constructor",
)

// GetClosingPeriodsQuery lists every closing period. Public: customers need it to pick a date.
type GetClosingPeriodsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetClosingPeriodsQuery() GetClosingPeriodsQuery {
	return GetClosingPeriodsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetClosingPeriodsQuery) Validate() error {
	return q.guard.Validate(ErrGetClosingPeriodsQueryIsNotConstructed)
}

// GetClosingPeriodsQueryResponse carries calendar days anchored at noon UTC.
type GetClosingPeriodsQueryResponse struct {
	ID        kernel.ClosingPeriodID
	StartDate time.Time
	EndDate   time.Time
}
