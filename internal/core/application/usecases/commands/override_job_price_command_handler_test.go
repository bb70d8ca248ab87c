package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
)

func TestOverrideJobPriceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingJob(t, 4500)
	cmd, err := commands.NewOverrideJobPriceCommand(aggregate.ID(), kernel.NewUUID(), 6000)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		jobRepo.On("Update", mock.Anything, mock.MatchedBy(func(j *job.Job) bool {
			return j.CurrentPriceCents() == 6000 && len(j.PendingPriceChanges()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOverrideJobPriceCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func Test_NewOverrideJobPriceCommand_Invalid(t *testing.T) {
	_, err := commands.NewOverrideJobPriceCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)

	_, err = commands.NewOverrideJobPriceCommand(kernel.UUID{}, kernel.NewUUID(), 6000)
	assert.Error(t, err)
}
