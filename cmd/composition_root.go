package cmd

import (
	"github.com/tokendad/ApexPlow/internal/adapters/out/postgres"
	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/application/usecases/queries"
	"github.com/tokendad/ApexPlow/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobConfigUoWFactory = FuncJobConfigUoWFactory(func() commands.JobConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionJobStatusCommandHandler() commands.TransitionJobStatusCommandHandler {
	var f commands.JobConfigUoWFactory = FuncJobConfigUoWFactory(func() commands.JobConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionJobStatusCommandHandler(f, services.NewCancellationPolicy())
}

func (c *CompositionRoot) CreateOverrideJobPriceCommandHandler() commands.OverrideJobPriceCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideJobPriceCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWaitlistEntryCommandHandler() commands.CreateWaitlistEntryCommandHandler {
	var f commands.WaitlistUoWFactory = FuncWaitlistUoWFactory(func() commands.WaitlistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWaitlistEntryCommandHandler(f)
}

func (c *CompositionRoot) CreatePromoteWaitlistEntryCommandHandler() commands.PromoteWaitlistEntryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPromoteWaitlistEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveWaitlistEntryCommandHandler() commands.RemoveWaitlistEntryCommandHandler {
	var f commands.WaitlistUoWFactory = FuncWaitlistUoWFactory(func() commands.WaitlistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveWaitlistEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireWaitlistEntriesCommandHandler() commands.ExpireWaitlistEntriesCommandHandler {
	var f commands.WaitlistUoWFactory = FuncWaitlistUoWFactory(func() commands.WaitlistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireWaitlistEntriesCommandHandler(f)
}

func (c *CompositionRoot) CreateConfigureServiceAreaCommandHandler() commands.ConfigureServiceAreaCommandHandler {
	var f commands.ConfigUoWFactory = FuncConfigUoWFactory(func() commands.ConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfigureServiceAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertPricingTierCommandHandler() commands.UpsertPricingTierCommandHandler {
	var f commands.ConfigUoWFactory = FuncConfigUoWFactory(func() commands.ConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertPricingTierCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceCancellationRulesCommandHandler() commands.ReplaceCancellationRulesCommandHandler {
	var f commands.ConfigUoWFactory = FuncConfigUoWFactory(func() commands.ConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceCancellationRulesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetJobBoardQueryHandler() queries.GetJobBoardQueryHandler {
	return queries.NewGetJobBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWaitlistQueryHandler() queries.GetWaitlistQueryHandler {
	return queries.NewGetWaitlistQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodaySummaryQueryHandler() queries.GetTodaySummaryQueryHandler {
	return queries.NewGetTodaySummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPricingTiersQueryHandler() queries.GetPricingTiersQueryHandler {
	return queries.NewGetPricingTiersQueryHandler(c.gormDB)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncJobConfigUoWFactory func() commands.JobConfigUoW

func (f FuncJobConfigUoWFactory) Create() commands.JobConfigUoW {
	return f()
}

type FuncWaitlistUoWFactory func() commands.WaitlistUoW

func (f FuncWaitlistUoWFactory) Create() commands.WaitlistUoW {
	return f()
}

type FuncConfigUoWFactory func() commands.ConfigUoW

func (f FuncConfigUoWFactory) Create() commands.ConfigUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
