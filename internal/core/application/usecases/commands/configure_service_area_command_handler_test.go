package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
)

func TestConfigureServiceAreaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	center, err := kernel.NewGeoPoint(42.3601, -71.0589)
	require.NoError(t, err)
	area, err := kernel.NewServiceArea(center, 15)
	require.NoError(t, err)

	cmd, err := commands.NewConfigureServiceAreaCommand(area)
	require.NoError(t, err)

	configRepo := new(MockConfigRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("SaveServiceArea", mock.Anything, area).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfigureServiceAreaCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	configRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func Test_NewConfigureServiceAreaCommand_Invalid(t *testing.T) {
	_, err := commands.NewConfigureServiceAreaCommand(kernel.ServiceArea{})
	assert.Error(t, err)
}
