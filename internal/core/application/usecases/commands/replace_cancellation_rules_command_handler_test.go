package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
)

func TestReplaceCancellationRulesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	threshold := 6.0
	asapRule, err := pricing.NewCancellationRule(job.TypeASAP, nil, 25, "driver already en route")
	require.NoError(t, err)
	scheduledRule, err := pricing.NewCancellationRule(job.TypeScheduled, &threshold, 50, "under 6 hours notice")
	require.NoError(t, err)
	rules := []pricing.CancellationRule{asapRule, scheduledRule}

	cmd, err := commands.NewReplaceCancellationRulesCommand(rules)
	require.NoError(t, err)

	configRepo := new(MockConfigRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("ReplaceCancellationRules", mock.Anything, rules).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceCancellationRulesCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	configRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReplaceCancellationRulesCommandHandler_Handle_EmptySetClearsTable(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReplaceCancellationRulesCommand(nil)
	require.NoError(t, err)

	configRepo := new(MockConfigRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("ReplaceCancellationRules", mock.Anything, []pricing.CancellationRule(nil)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceCancellationRulesCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	configRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func Test_NewReplaceCancellationRulesCommand_Invalid(t *testing.T) {
	_, err := commands.NewReplaceCancellationRulesCommand([]pricing.CancellationRule{{}})
	assert.ErrorIs(t, err, pricing.ErrCancellationRuleIsNotConstructed)
}
