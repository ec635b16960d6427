package commands

import (
	"context"

	"bakery/internal/core/application/usecases/authorization"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
)

// ArchiveProductCommandHandler withdraws a product from the catalog. Staff only.
// Archiving an archived product succeeds and saves it unchanged.
//
// Example:
//
//	handler := NewArchiveProductCommandHandler(uowFactory)
//	cmd, _ := NewArchiveProductCommand(productID)
//
//	if err := handler.Handle(ctx, caller, cmd); err != nil {
//	    return fmt.Errorf("archive failed: %w", err)
//	}
//	// Product no longer appears among the active products
type ArchiveProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewArchiveProductCommandHandler creates a handler for product archiving.
// Requires a ProductUoWFactory for transactional persistence.
func NewArchiveProductCommandHandler(uowFactory ProductUoWFactory) ArchiveProductCommandHandler {
	return ArchiveProductCommandHandler{uowFactory: uowFactory}
}

// Handle checks that caller is staff, then marks the product archived and saves it.
// Returns errs.ErrObjectNotFound for an unknown id.
func (h *ArchiveProductCommandHandler) Handle(ctx context.Context, caller *user.User, cmd ArchiveProductCommand) error {
	return authorization.RequireAdminExec(ctx, caller, cmd, h.handle)
}

func (h *ArchiveProductCommandHandler) handle(ctx context.Context, cmd ArchiveProductCommand) error {
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

	archived := product.Copy(existing)
	archived.Archive()

	if _, err = repo.Save(ctx, archived); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
