package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
)

// CreateProductCommandHandler adds an active product to the catalog. Staff only.
//
// Example:
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	cmd := NewCreateProductCommand("Baguette", "", decimal.NewFromInt(2), nil)
//
//	id, err := handler.Handle(ctx, caller, cmd)
//	if errors.Is(err, product.ErrInvalidProduct) {
//	    return fmt.Errorf("product rejected: %w", err)
//	}
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
// Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle checks that caller is staff, builds the product and stores it.
// Returns the id assigned by the repository.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	caller *user.User,
	cmd CreateProductCommand,
) (kernel.ProductID, error) {
	return authorization.RequireAdmin(ctx, caller, cmd, h.handle)
}

func (h *CreateProductCommandHandler) handle(ctx context.Context, cmd CreateProductCommand) (kernel.ProductID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Allergens())
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

	id, err := uow.ProductRepository().Save(ctx, p)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
