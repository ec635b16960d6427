package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/feature"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"
)

// CreateOrderCommandHandler places a customer order. It is public: no caller is required,
// but the PRODUCT_ORDERING toggle must be on. A toggle that was never stored counts as on.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	cmd := NewCreateOrderCommand(client, details)
//
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrProductOrderingDisabled) {
//	    return fmt.Errorf("orders are closed: %w", err)
//	}
//	if errors.Is(err, order.ErrInvalidOrder) {
//	    return fmt.Errorf("order rejected: %w", err)
//	}
//	// The order is stored and id identifies it
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a Clock that supplies
// "today" for the delivery date checks.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle validates the order against the active products and closing periods read in the
// same transaction, then stores it and returns its id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
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

	enabled, err := isProductOrderingEnabled(ctx, uow)
	if err != nil {
		return 0, err
	}
	if !enabled {
		return 0, ErrProductOrderingDisabled
	}

	snapshot, err := loadOrderSnapshot(ctx, uow, h.clock)
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.Client(), cmd.Details(), snapshot)
	if err != nil {
		return 0, err
	}

	id, err := uow.OrderRepository().Save(ctx, o)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

// isProductOrderingEnabled reports the PRODUCT_ORDERING toggle, defaulting to on.
func isProductOrderingEnabled(ctx context.Context, uow FeatureRepoFactory) (bool, error) {
	f, err := uow.FeatureRepository().GetByName(ctx, feature.ProductOrdering)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return f.IsEnabled(), nil
}

type snapshotSource interface {
	ProductRepoFactory
	ClosingPeriodRepoFactory
}

// loadOrderSnapshot reads the current active products and closing periods.
func loadOrderSnapshot(ctx context.Context, uow snapshotSource, clock kernel.Clock) (order.Snapshot, error) {
	activeProducts, err := uow.ProductRepository().GetAllByStatus(ctx, product.Active)
	if err != nil {
		return order.Snapshot{}, err
	}

	closingPeriods, err := uow.ClosingPeriodRepository().GetAll(ctx)
	if err != nil {
		return order.Snapshot{}, err
	}

	return order.Snapshot{
		ActiveProducts: activeProducts,
		ClosingPeriods: closingPeriods,
		Now:            clock.Now(),
	}, nil
}
