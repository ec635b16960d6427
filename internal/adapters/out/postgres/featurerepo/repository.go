package featurerepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/feature"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFeatureRepository implements ports.FeatureRepository using GORM.
type GormFeatureRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormFeatureRepository(db *gorm.DB, tracker aggregateTracker) *GormFeatureRepository {
	return &GormFeatureRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormFeatureRepository) GetByName(ctx context.Context, name string) (*feature.Feature, error) {
	var dto FeatureDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("feature", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the toggle by name.
func (r *GormFeatureRepository) Save(ctx context.Context, aggregate *feature.Feature) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}
