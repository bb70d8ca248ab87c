package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/core/domain/services"
)

func newPendingJob(t *testing.T, quotedPriceCents int) *job.Job {
	t.Helper()
	aggregate, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(),
		"12 Birch Ln", testLocation(t), job.TypeASAP, nil, quotedPriceCents,
		nil, job.SourceCustomer, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func newTransitionHandler(factory commands.JobConfigUoWFactory) commands.TransitionJobStatusCommandHandler {
	return commands.NewTransitionJobStatusCommandHandler(factory, services.NewCancellationPolicy())
}

func TestTransitionJobStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingJob(t, 4500)
	cmd, err := commands.NewTransitionJobStatusCommand(aggregate.ID(), kernel.NewUUID(), job.Assigned, nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		jobRepo.On("Update", mock.Anything, mock.MatchedBy(func(j *job.Job) bool {
			return j.Status() == job.Assigned && j.AssignedAt() != nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionJobStatusCommandHandler_Handle_CancelChargesEngagedDriver(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	aggregate := newPendingJob(t, 10000)
	require.NoError(t, aggregate.Transition(job.Assigned, actorID, time.Now().UTC()))
	require.NoError(t, aggregate.Transition(job.EnRoute, actorID, time.Now().UTC()))

	reason := "storm passed"
	cmd, err := commands.NewTransitionJobStatusCommand(aggregate.ID(), actorID, job.Cancelled, &reason)
	require.NoError(t, err)

	rule, err := pricing.NewCancellationRule(job.TypeASAP, nil, 25, "driver already en route")
	require.NoError(t, err)

	configRepo := new(MockConfigRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("GetCancellationRules", mock.Anything).
			Return([]pricing.CancellationRule{rule}, nil).Once(),
		jobRepo.On("Update", mock.Anything, mock.MatchedBy(func(j *job.Job) bool {
			return j.Status() == job.Cancelled &&
				j.CancellationChargeCents() != nil && *j.CancellationChargeCents() == 2500
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, aggregate.CancellationReason())
	assert.Equal(t, reason, *aggregate.CancellationReason())
	jobRepo.AssertExpectations(t)
	configRepo.AssertExpectations(t)
}

func TestTransitionJobStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingJob(t, 4500)
	cmd, err := commands.NewTransitionJobStatusCommand(aggregate.ID(), kernel.NewUUID(), job.Completed, nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidTransition)

	var invalidTransition *job.InvalidTransitionError
	require.ErrorAs(t, err, &invalidTransition)
	assert.Equal(t, job.Pending, invalidTransition.From)
	assert.Equal(t, job.Completed, invalidTransition.To)

	// Nothing was persisted.
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, job.Pending, aggregate.Status())
}

func Test_NewTransitionJobStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewTransitionJobStatusCommand(kernel.UUID{}, kernel.NewUUID(), job.Assigned, nil)
	assert.Error(t, err)

	_, err = commands.NewTransitionJobStatusCommand(kernel.NewUUID(), kernel.NewUUID(), job.Unknown, nil)
	assert.Error(t, err)
}
