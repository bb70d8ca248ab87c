package configrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/adapters/out/postgres/configrepo"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

// ConfigRepositoryIntegrationTestSuite provides integration tests for
// ConfigRepository against a real PostgreSQL instance.
type ConfigRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *configrepo.GormConfigRepository
}

func (suite *ConfigRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&configrepo.TierDTO{},
		&configrepo.CancellationRuleDTO{},
		&configrepo.ServiceAreaDTO{},
	))
}

func (suite *ConfigRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE pricing_config, cancellation_rules, service_area_config").Error)

	suite.repository = configrepo.NewGormConfigRepository(suite.db)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestSaveTier_UpsertRoundTrip() {
	ctx := context.Background()

	tier, err := pricing.NewTier(2, "2-Car Driveway", 4500)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveTier(ctx, tier))

	edited, err := pricing.NewTier(2, "2-Car Driveway", 5000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveTier(ctx, edited))

	stored, err := suite.repository.GetTier(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(5000, stored.PriceCents())
	suite.Equal("2-Car Driveway", stored.Label())
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestGetTier_NotFound() {
	_, err := suite.repository.GetTier(context.Background(), 99)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestGetActiveTiers_OrderedByPrice() {
	ctx := context.Background()

	large, err := pricing.NewTier(3, "3-Car Driveway", 6500)
	suite.Require().NoError(err)
	small, err := pricing.NewTier(1, "1-Car Driveway", 3000)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.SaveTier(ctx, large))
	suite.Require().NoError(suite.repository.SaveTier(ctx, small))

	tiers, err := suite.repository.GetActiveTiers(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tiers, 2)
	suite.Equal(3000, tiers[0].PriceCents())
	suite.Equal(6500, tiers[1].PriceCents())
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestReplaceCancellationRules_SwapsTable() {
	ctx := context.Background()

	threshold := 12.0
	first, err := pricing.NewCancellationRule(job.TypeScheduled, &threshold, 0, "12+ hours notice")
	suite.Require().NoError(err)
	second, err := pricing.NewCancellationRule(job.TypeASAP, nil, 25, "driver en route")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.ReplaceCancellationRules(ctx,
		[]pricing.CancellationRule{first, second}))

	replacement, err := pricing.NewCancellationRule(job.TypeASAP, nil, 50, "driver en route")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceCancellationRules(ctx,
		[]pricing.CancellationRule{replacement}))

	rules, err := suite.repository.GetCancellationRules(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rules, 1)
	suite.Equal(job.TypeASAP, rules[0].JobType())
	suite.Equal(50, rules[0].ChargePercent())
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestReplaceCancellationRules_EmptySetClears() {
	ctx := context.Background()

	rule, err := pricing.NewCancellationRule(job.TypeASAP, nil, 25, "driver en route")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceCancellationRules(ctx,
		[]pricing.CancellationRule{rule}))

	suite.Require().NoError(suite.repository.ReplaceCancellationRules(ctx, nil))

	rules, err := suite.repository.GetCancellationRules(ctx)
	suite.Require().NoError(err)
	suite.Empty(rules)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestSaveServiceArea_ReplacesActiveArea() {
	ctx := context.Background()

	boston, err := kernel.NewGeoPoint(42.3601, -71.0589)
	suite.Require().NoError(err)
	first, err := kernel.NewServiceArea(boston, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveServiceArea(ctx, first))

	second, err := kernel.NewServiceArea(boston, 25)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveServiceArea(ctx, second))

	active, err := suite.repository.GetActiveServiceArea(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(active)
	suite.InDelta(25.0, active.RadiusMiles(), 1e-9)

	// Old areas are deactivated, not deleted.
	var total int64
	suite.Require().NoError(suite.db.Model(&configrepo.ServiceAreaDTO{}).Count(&total).Error)
	suite.EqualValues(2, total)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestGetActiveServiceArea_NilWhenUnconfigured() {
	active, err := suite.repository.GetActiveServiceArea(context.Background())
	suite.Require().NoError(err)
	suite.Nil(active)
}

func TestConfigRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigRepositoryIntegrationTestSuite))
}
