package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
)

// UpdateProductCommandHandler edits an active product. Staff only.
//
// Example:
//
//	handler := NewUpdateProductCommandHandler(uowFactory)
//	cmd, _ := NewUpdateProductCommand(productID, "Croissant", "", price, nil)
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("product update failed: %w", err)
//	}
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product edits.
// Requires a ProductUoWFactory for transactional persistence.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle checks that caller is staff, then loads the product, applies the new details to a
// copy and saves it. Returns errs.ErrObjectNotFound for an unknown id and
// product.ErrInvalidProduct when the product is archived or a new value is rejected.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, caller *user.User, cmd UpdateProductCommand) error {
	return authorization.RequireAdminExec(ctx, caller, cmd, h.handle)
}

func (h *UpdateProductCommandHandler) handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	repo := uow.ProductRepository()
	existing, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	updated := product.Copy(existing)
	if err = updated.UpdateWith(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Allergens()); err != nil {
		return err
	}

	if _, err = repo.Save(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
