package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrGetProductOrderingStatusQueryIsNotConstructed = errors.New(
	"GetProductOrderingStatusQuery must be created via NewGetProductOrderingStatusQuery constructor",
)

// GetProductOrderingStatusQuery tells the order form whether it may accept orders. Public.
type GetProductOrderingStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProductOrderingStatusQuery() GetProductOrderingStatusQuery {
	return GetProductOrderingStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetProductOrderingStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetProductOrderingStatusQueryIsNotConstructed)
}

type GetProductOrderingStatusQueryResponse struct {
	Enabled bool
}
