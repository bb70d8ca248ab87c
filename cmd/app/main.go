package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/tokendad/ApexPlow/cmd"
	httpadapter "github.com/tokendad/ApexPlow/internal/adapters/in/http"
	"github.com/tokendad/ApexPlow/internal/adapters/out/postgres/configrepo"
	"github.com/tokendad/ApexPlow/internal/adapters/out/postgres/jobrepo"
	"github.com/tokendad/ApexPlow/internal/adapters/out/postgres/waitlistrepo"
	"github.com/tokendad/ApexPlow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateExpireWaitlistEntriesCommandHandler(),
		time.Duration(configs.WaitlistTTLHours)*time.Hour,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		WaitlistTTLHours: goDotEnvIntVariable("WAITLIST_TTL_HOURS", 48),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.StatusChangeDTO{},
		&jobrepo.PriceChangeDTO{},
		&waitlistrepo.EntryDTO{},
		&configrepo.TierDTO{},
		&configrepo.CancellationRuleDTO{},
		&configrepo.ServiceAreaDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateTransitionJobStatusCommandHandler(),
		app.CreateOverrideJobPriceCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateCreateWaitlistEntryCommandHandler(),
		app.CreatePromoteWaitlistEntryCommandHandler(),
		app.CreateRemoveWaitlistEntryCommandHandler(),
		app.CreateConfigureServiceAreaCommandHandler(),
		app.CreateUpsertPricingTierCommandHandler(),
		app.CreateReplaceCancellationRulesCommandHandler(),
		app.CreateGetJobBoardQueryHandler(),
		app.CreateGetWaitlistQueryHandler(),
		app.CreateGetTodaySummaryQueryHandler(),
		app.CreateGetPricingTiersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
