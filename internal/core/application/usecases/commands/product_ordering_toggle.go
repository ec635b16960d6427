package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/feature"
	"bakery/internal/pkg/errs"
)

// toggleProductOrdering loads the toggle by name, applies toggle to a copy and saves it.
// A toggle that was never stored starts enabled.
func toggleProductOrdering(ctx context.Context, uowFactory FeatureUoWFactory, toggle func(*feature.Feature)) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.FeatureRepository()
	existing, err := repo.GetByName(ctx, feature.ProductOrdering)
	if errors.Is(err, errs.ErrObjectNotFound) {
		existing, err = feature.NewFeature(feature.ProductOrdering, true)
	}
	if err != nil {
		return err
	}

	toggled := feature.Copy(existing)
	toggle(toggled)

	if err = repo.Save(ctx, toggled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
