// Package queries contains read operations. Staff listings read through repositories or
// raw SQL; none of them modify state.
package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveProductsQueryIsNotConstructed = errors.New(
	"GetActiveProductsQuery must be created via NewGetActiveProductsQuery constructor",
)

// GetActiveProductsQuery lists the orderable catalog. Staff only.
type GetActiveProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveProductsQuery() GetActiveProductsQuery {
	return GetActiveProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveProductsQueryIsNotConstructed)
}

type GetActiveProductsQueryResponse struct {
	ID          kernel.ProductID
	Name        string
	Description string
	Price       decimal.Decimal
	Allergens   []string
}
