package closingperiodrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClosingPeriodRepository implements ports.ClosingPeriodRepository using GORM.
type GormClosingPeriodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormClosingPeriodRepository(db *gorm.DB, tracker aggregateTracker) *GormClosingPeriodRepository {
	return &GormClosingPeriodRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormClosingPeriodRepository) Save(
	ctx context.Context,
	aggregate *closingperiod.ClosingPeriod,
) (kernel.ClosingPeriodID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if dto.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return 0, err
		}
	} else {
		result := r.db.WithContext(ctx).Model(&ClosingPeriodDTO{}).Where("id = ?", dto.ID).
			Select("start_date", "end_date").Updates(&dto)
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, errs.NewObjectNotFoundError("closingPeriodId", dto.ID)
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return kernel.ClosingPeriodID(dto.ID), nil
}

func (r *GormClosingPeriodRepository) Get(
	ctx context.Context,
	id kernel.ClosingPeriodID,
) (*closingperiod.ClosingPeriod, error) {
	var dto ClosingPeriodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("closingPeriodId", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormClosingPeriodRepository) GetAll(ctx context.Context) ([]*closingperiod.ClosingPeriod, error) {
	var dtos []ClosingPeriodDTO
	if err := r.db.WithContext(ctx).Order("start_date, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	periods := make([]*closingperiod.ClosingPeriod, 0, len(dtos))
	for _, dto := range dtos {
		cp, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		periods = append(periods, cp)
	}

	return periods, nil
}

func (r *GormClosingPeriodRepository) Delete(ctx context.Context, id kernel.ClosingPeriodID) error {
	result := r.db.WithContext(ctx).Delete(&ClosingPeriodDTO{}, "id = ?", int64(id))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("closingPeriodId", int64(id))
	}
	return nil
}
