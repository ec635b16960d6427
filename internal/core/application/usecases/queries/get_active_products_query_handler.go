package queries

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
	"bakery/internal/core/ports"
)

// GetActiveProductsQueryHandler reads active products through the product repository.
type GetActiveProductsQueryHandler struct {
	repo ports.ProductRepository
}

func NewGetActiveProductsQueryHandler(repo ports.ProductRepository) GetActiveProductsQueryHandler {
	return GetActiveProductsQueryHandler{repo: repo}
}

// Handle returns the active products ordered by id. The caller must be an admin.
func (h GetActiveProductsQueryHandler) Handle(
	ctx context.Context,
	caller *user.User,
	query GetActiveProductsQuery,
) ([]GetActiveProductsQueryResponse, error) {
	return authorization.RequireAdmin(ctx, caller, query, h.handle)
}

func (h GetActiveProductsQueryHandler) handle(
	ctx context.Context,
	query GetActiveProductsQuery,
) ([]GetActiveProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.repo.GetAllByStatus(ctx, product.Active)
	if err != nil {
		return nil, err
	}

	result := make([]GetActiveProductsQueryResponse, 0, len(products))
	for _, p := range products {
		result = append(result, GetActiveProductsQueryResponse{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			Price:       p.Price(),
			Allergens:   p.Allergens(),
		})
	}

	return result, nil
}
