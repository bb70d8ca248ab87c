// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/tokendad/ApexPlow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// WaitlistRepoFactory provides access to the waitlist repository within a transaction.
	WaitlistRepoFactory interface {
		WaitlistRepository() ports.WaitlistRepository
	}

	// ConfigRepoFactory provides access to the configuration repository within a transaction.
	ConfigRepoFactory interface {
		ConfigRepository() ports.ConfigRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// JobConfigUoW manages transactions for operations that write a job while
	// reading pricing configuration, such as creation and cancellation.
	JobConfigUoW interface {
		TxManager
		JobRepoFactory
		ConfigRepoFactory
	}

	// JobConfigUoWFactory creates new job-and-config unit of work instances.
	JobConfigUoWFactory interface {
		Create() JobConfigUoW
	}

	// WaitlistUoW manages transactions for waitlist-only operations.
	WaitlistUoW interface {
		TxManager
		WaitlistRepoFactory
	}

	// WaitlistUoWFactory creates new waitlist unit of work instances.
	WaitlistUoWFactory interface {
		Create() WaitlistUoW
	}

	// ConfigUoW manages transactions for configuration writes.
	ConfigUoW interface {
		TxManager
		ConfigRepoFactory
	}

	// ConfigUoWFactory creates new configuration unit of work instances.
	ConfigUoWFactory interface {
		Create() ConfigUoW
	}

	// UoW manages transactions across jobs, the waitlist, and configuration.
	// Used by promotion, which creates a job and claims a waitlist entry in
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobRepo := uow.JobRepository()
	//   waitlistRepo := uow.WaitlistRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		JobRepoFactory
		WaitlistRepoFactory
		ConfigRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
