package commands_test

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
	"github.com/tokendad/ApexPlow/internal/core/ports"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllActive(_ context.Context) ([]*job.Job, error) {
	return nil, errors.New("not implemented in mock")
}

type MockWaitlistRepository struct{ mock.Mock }

func (m *MockWaitlistRepository) Add(ctx context.Context, aggregate *waitlist.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWaitlistRepository) Update(ctx context.Context, aggregate *waitlist.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWaitlistRepository) Get(ctx context.Context, id kernel.UUID) (*waitlist.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waitlist.Entry), args.Error(1)
}

func (m *MockWaitlistRepository) GetAllWaiting(_ context.Context) ([]*waitlist.Entry, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockWaitlistRepository) GetStaleWaiting(ctx context.Context, cutoff time.Time) ([]*waitlist.Entry, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*waitlist.Entry), args.Error(1)
}

type MockConfigRepository struct{ mock.Mock }

func (m *MockConfigRepository) GetTier(ctx context.Context, id int) (pricing.Tier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pricing.Tier), args.Error(1)
}

func (m *MockConfigRepository) GetActiveTiers(_ context.Context) ([]pricing.Tier, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockConfigRepository) GetCancellationRules(ctx context.Context) ([]pricing.CancellationRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.CancellationRule), args.Error(1)
}

func (m *MockConfigRepository) GetActiveServiceArea(ctx context.Context) (*kernel.ServiceArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.ServiceArea), args.Error(1)
}

func (m *MockConfigRepository) SaveServiceArea(ctx context.Context, area kernel.ServiceArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockConfigRepository) SaveTier(ctx context.Context, tier pricing.Tier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}

func (m *MockConfigRepository) ReplaceCancellationRules(ctx context.Context, rules []pricing.CancellationRule) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface in the package, so the same
// mock serves job-only, waitlist-only, and cross-aggregate handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) WaitlistRepository() ports.WaitlistRepository {
	args := m.Called()
	return args.Get(0).(ports.WaitlistRepository)
}

func (m *MockUoW) ConfigRepository() ports.ConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.ConfigRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockJobConfigUoWFactory struct{ mock.Mock }

func (m *MockJobConfigUoWFactory) Create() commands.JobConfigUoW {
	args := m.Called()
	return args.Get(0).(commands.JobConfigUoW)
}

type MockWaitlistUoWFactory struct{ mock.Mock }

func (m *MockWaitlistUoWFactory) Create() commands.WaitlistUoW {
	args := m.Called()
	return args.Get(0).(commands.WaitlistUoW)
}

type MockConfigUoWFactory struct{ mock.Mock }

func (m *MockConfigUoWFactory) Create() commands.ConfigUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfigUoW)
}
