package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrReplaceCancellationRulesCommandIsNotConstructed = errors.New(
	"ReplaceCancellationRulesCommand must be created via NewReplaceCancellationRulesCommand constructor",
)

// ReplaceCancellationRulesCommand represents an operator's request to swap the
// full cancellation rule table. Rules are edited as a unit; an empty set makes
// every cancellation free.
type ReplaceCancellationRulesCommand struct { //nolint:recvcheck //using for validation
	rules []pricing.CancellationRule

	guard guard.ConstructorGuard
}

// NewReplaceCancellationRulesCommand creates a command to replace the rule table.
func NewReplaceCancellationRulesCommand(rules []pricing.CancellationRule) (ReplaceCancellationRulesCommand, error) {
	rulesCommand := ReplaceCancellationRulesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rulesCommand.setRules(rules); err != nil {
		return ReplaceCancellationRulesCommand{}, err
	}

	return rulesCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceCancellationRulesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceCancellationRulesCommandIsNotConstructed)
}

// Rules returns the rule set to store.
func (c ReplaceCancellationRulesCommand) Rules() []pricing.CancellationRule {
	return c.rules
}

func (c *ReplaceCancellationRulesCommand) setRules(rules []pricing.CancellationRule) error {
	var errAll error
	for _, rule := range rules {
		errAll = errors.Join(errAll, rule.Validate())
	}
	if errAll != nil {
		return errAll
	}

	c.rules = rules
	return nil
}
