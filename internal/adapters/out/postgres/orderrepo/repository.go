package orderrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts a new order with its lines, or rewrites an existing order and replaces its lines.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) (kernel.OrderID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if dto.ID == 0 {
		if err := db.Create(&dto).Error; err != nil {
			return 0, err
		}
		r.tracker.TrackAggregate(aggregate)
		return kernel.OrderID(dto.ID), nil
	}

	lines := dto.Lines
	dto.Lines = nil

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at", "Lines").Updates(&dto)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("orderId", dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
		return 0, err
	}
	if len(lines) > 0 {
		if err := db.Create(&lines).Error; err != nil {
			return 0, err
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return kernel.OrderID(dto.ID), nil
}

// Get retrieves an order by ID with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order sorted by id.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
