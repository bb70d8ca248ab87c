package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	waitlistExpiryJob *WaitlistExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireWaitlistHandler commands.ExpireWaitlistEntriesCommandHandler,
	waitlistTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		waitlistExpiryJob: NewWaitlistExpiryJob(expireWaitlistHandler, waitlistTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.waitlistExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start waitlist expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.waitlistExpiryJob.Stop()
}
