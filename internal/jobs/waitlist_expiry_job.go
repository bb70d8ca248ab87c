package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WaitlistExpiryJob manages the scheduled expiry of stale waitlist entries.
// Runs every hour and expires entries that have been waiting longer than the
// configured TTL. Entries promoted mid-sweep are skipped, not failed.
type WaitlistExpiryJob struct {
	handler commands.ExpireWaitlistEntriesCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWaitlistExpiryJob creates a new job for expiring stale waitlist entries.
// Entries older than ttl are moved to the expired status on each run.
func NewWaitlistExpiryJob(
	handler commands.ExpireWaitlistEntriesCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *WaitlistExpiryJob {
	return &WaitlistExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "waitlist_expiry_job"),
	}
}

// Start begins the waitlist expiry job to run at the top of every hour.
func (j *WaitlistExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.ttl)

		cmd, cmdErr := commands.NewExpireWaitlistEntriesCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Waitlist expiry command invalid", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Waitlist expiry job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale waitlist entries", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Waitlist expiry job started (running hourly)", "ttl", j.ttl)
	return nil
}

// Stop stops the waitlist expiry job.
func (j *WaitlistExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Waitlist expiry job stopped")
}
