package queries

import (
	"context"

	"bakery/internal/core/domain/model/feature"

	"gorm.io/gorm"
)

type GetProductOrderingStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetProductOrderingStatusQueryHandler(db *gorm.DB) GetProductOrderingStatusQueryHandler {
	return GetProductOrderingStatusQueryHandler{db: db}
}

// Handle reads the PRODUCT_ORDERING toggle. A toggle that was never stored is reported
// enabled, matching what order creation does.
func (h GetProductOrderingStatusQueryHandler) Handle(
	ctx context.Context,
	query GetProductOrderingStatusQuery,
) (GetProductOrderingStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductOrderingStatusQueryResponse{}, err
	}

	var enabled []bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT enabled
		FROM features
		WHERE name = ?
	`, feature.ProductOrdering).Scan(&enabled).Error
	if err != nil {
		return GetProductOrderingStatusQueryResponse{}, err
	}

	if len(enabled) == 0 {
		return GetProductOrderingStatusQueryResponse{Enabled: true}, nil
	}
	return GetProductOrderingStatusQueryResponse{Enabled: enabled[0]}, nil
}
