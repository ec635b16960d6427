package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/feature"
	"bakery/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDisableProductOrderingCommandHandler_Handle(t *testing.T) {
	t.Run("should save a disabled copy", func(t *testing.T) {
		ctx := t.Context()
		existing, err := feature.RestoreFeature(feature.ProductOrdering, true)
		require.NoError(t, err)

		repo := new(MockFeatureRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("FeatureRepository").Return(repo).Once(),
			repo.On("GetByName", ctx, "PRODUCT_ORDERING").Return(existing, nil).Once(),
			repo.On("Save", ctx, mock.MatchedBy(func(f *feature.Feature) bool {
				return f.Name() == feature.ProductOrdering && !f.IsEnabled()
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockFeatureUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDisableProductOrderingCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, admin, commands.NewDisableProductOrderingCommand()))

		assert.True(t, existing.IsEnabled())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should never look the feature up for a non admin", func(t *testing.T) {
		repo := new(MockFeatureRepository)
		uow := new(MockUoW)
		uow.On("FeatureRepository").Return(repo).Maybe()
		factory := new(MockFeatureUoWFactory)
		factory.On("Create").Return(uow).Maybe()

		h := commands.NewDisableProductOrderingCommandHandler(factory)
		err := h.Handle(t.Context(), visitor, commands.NewDisableProductOrderingCommand())

		var invalid *user.InvalidUserError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "User has to be ADMIN to execute this action", invalid.Message)
		repo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
		factory.AssertNotCalled(t, "Create")
	})
}
