package productrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records the aggregates written through the repository.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts products without id and overwrites the others.
func (r *GormProductRepository) Save(ctx context.Context, aggregate *product.Product) (kernel.ProductID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if dto.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return 0, err
		}
	} else {
		result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).
			Select("*").Omit("id").Updates(&dto)
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, errs.NewObjectNotFoundError("productId", dto.ID)
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return kernel.ProductID(dto.ID), nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.ProductID) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) GetAllByStatus(ctx context.Context, status product.Status) ([]*product.Product, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
