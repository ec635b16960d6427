package ports

import (
	"context"

	"bakery/internal/core/domain/model/feature"
)

type FeatureRepository interface {
	// GetByName returns *errs.ObjectNotFoundError when the toggle was never stored.
	GetByName(ctx context.Context, name string) (*feature.Feature, error)

	// Save upserts the toggle by name.
	Save(ctx context.Context, aggregate *feature.Feature) error
}
