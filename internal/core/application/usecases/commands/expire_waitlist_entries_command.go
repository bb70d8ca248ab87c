package commands

import (
	"errors"
	"time"

	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var (
	ErrExpireWaitlistEntriesCommandIsNotConstructed = errors.New(
		"ExpireWaitlistEntriesCommand must be created via NewExpireWaitlistEntriesCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff must not be zero")
)

// ExpireWaitlistEntriesCommand represents a sweep request to expire every
// waiting entry created before the cutoff.
type ExpireWaitlistEntriesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireWaitlistEntriesCommand creates a command to expire stale entries.
func NewExpireWaitlistEntriesCommand(cutoff time.Time) (ExpireWaitlistEntriesCommand, error) {
	expireCommand := ExpireWaitlistEntriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setCutoff(cutoff); err != nil {
		return ExpireWaitlistEntriesCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireWaitlistEntriesCommand) Validate() error {
	return c.guard.Validate(ErrExpireWaitlistEntriesCommandIsNotConstructed)
}

// Cutoff returns the creation time before which waiting entries expire.
func (c ExpireWaitlistEntriesCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpireWaitlistEntriesCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
