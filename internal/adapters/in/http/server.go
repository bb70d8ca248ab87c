package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/application/usecases/commands"
	"github.com/tokendad/ApexPlow/internal/core/application/usecases/queries"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the dispatch API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler            commands.CreateJobCommandHandler
	transitionJobStatusHandler  commands.TransitionJobStatusCommandHandler
	overrideJobPriceHandler     commands.OverrideJobPriceCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	createWaitlistEntryHandler  commands.CreateWaitlistEntryCommandHandler
	promoteWaitlistEntryHandler commands.PromoteWaitlistEntryCommandHandler
	removeWaitlistEntryHandler  commands.RemoveWaitlistEntryCommandHandler
	configureServiceAreaHandler commands.ConfigureServiceAreaCommandHandler
	upsertPricingTierHandler    commands.UpsertPricingTierCommandHandler
	replaceRulesHandler         commands.ReplaceCancellationRulesCommandHandler

	// Query handlers
	getJobBoardHandler     queries.GetJobBoardQueryHandler
	getWaitlistHandler     queries.GetWaitlistQueryHandler
	getTodaySummaryHandler queries.GetTodaySummaryQueryHandler
	getPricingTiersHandler queries.GetPricingTiersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	transitionJobStatusHandler commands.TransitionJobStatusCommandHandler,
	overrideJobPriceHandler commands.OverrideJobPriceCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	createWaitlistEntryHandler commands.CreateWaitlistEntryCommandHandler,
	promoteWaitlistEntryHandler commands.PromoteWaitlistEntryCommandHandler,
	removeWaitlistEntryHandler commands.RemoveWaitlistEntryCommandHandler,
	configureServiceAreaHandler commands.ConfigureServiceAreaCommandHandler,
	upsertPricingTierHandler commands.UpsertPricingTierCommandHandler,
	replaceRulesHandler commands.ReplaceCancellationRulesCommandHandler,
	getJobBoardHandler queries.GetJobBoardQueryHandler,
	getWaitlistHandler queries.GetWaitlistQueryHandler,
	getTodaySummaryHandler queries.GetTodaySummaryQueryHandler,
	getPricingTiersHandler queries.GetPricingTiersQueryHandler,
) *Server {
	return &Server{
		createJobHandler:            createJobHandler,
		transitionJobStatusHandler:  transitionJobStatusHandler,
		overrideJobPriceHandler:     overrideJobPriceHandler,
		recordPaymentHandler:        recordPaymentHandler,
		createWaitlistEntryHandler:  createWaitlistEntryHandler,
		promoteWaitlistEntryHandler: promoteWaitlistEntryHandler,
		removeWaitlistEntryHandler:  removeWaitlistEntryHandler,
		configureServiceAreaHandler: configureServiceAreaHandler,
		upsertPricingTierHandler:    upsertPricingTierHandler,
		replaceRulesHandler:         replaceRulesHandler,
		getJobBoardHandler:          getJobBoardHandler,
		getWaitlistHandler:          getWaitlistHandler,
		getTodaySummaryHandler:      getTodaySummaryHandler,
		getPricingTiersHandler:      getPricingTiersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs", s.GetJobBoard)
	api.POST("/jobs/:jobId/status", s.TransitionJobStatus)
	api.POST("/jobs/:jobId/price", s.OverrideJobPrice)
	api.POST("/jobs/:jobId/payment", s.RecordPayment)

	api.POST("/waitlist", s.CreateWaitlistEntry)
	api.GET("/waitlist", s.GetWaitlist)
	api.POST("/waitlist/:entryId/promote", s.PromoteWaitlistEntry)
	api.DELETE("/waitlist/:entryId", s.RemoveWaitlistEntry)

	api.GET("/pricing/tiers", s.GetPricingTiers)
	api.PUT("/pricing/tiers/:tierId", s.UpsertPricingTier)
	api.PUT("/config/service-area", s.ConfigureServiceArea)
	api.PUT("/config/cancellation-rules", s.ReplaceCancellationRules)
	api.GET("/dashboard/summary", s.GetTodaySummary)

	e.GET("/health", s.Health)
}

// CreateJob handles POST /api/v1/jobs - registers a new plow job.
func (s *Server) CreateJob(ctx echo.Context) error {
	var request NewJobRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job location: " + err.Error(),
		})
	}

	jobType, err := job.TypeFromString(request.JobType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job type: " + err.Error(),
		})
	}

	jobID := kernel.NewUUID()

	cmd, err := commands.NewCreateJobCommand(
		jobID,
		customerID,
		request.Address,
		location,
		jobType,
		job.SourceCustomer,
		request.TierID,
		request.ScheduledFor,
		request.SpecialInstructions,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	if handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrOutsideServiceArea) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Job site is outside the service area",
			})
		}

		return s.domainError(ctx, handleErr, "Failed to create job")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: jobID.String()})
}

// GetJobBoard handles GET /api/v1/jobs - retrieves all live jobs.
func (s *Server) GetJobBoard(ctx echo.Context) error {
	query := queries.NewGetJobBoardQuery()

	boardJobs, err := s.getJobBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve jobs",
		})
	}

	response := make([]JobBoardItem, len(boardJobs))
	for i, boardJob := range boardJobs {
		response[i] = JobBoardItem{
			ID:               boardJob.ID.String(),
			Address:          boardJob.Address,
			Status:           boardJob.Status,
			JobType:          boardJob.JobType,
			QuotedPriceCents: boardJob.QuotedPriceCents,
			FinalPriceCents:  boardJob.FinalPriceCents,
			RequestedAt:      boardJob.RequestedAt,
			ScheduledFor:     boardJob.ScheduledFor,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionJobStatus handles POST /api/v1/jobs/{jobId}/status - moves a job
// through its lifecycle.
func (s *Server) TransitionJobStatus(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id: " + err.Error(),
		})
	}

	var request StatusChangeRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor id: " + err.Error(),
		})
	}

	toStatus, err := job.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewTransitionJobStatusCommand(jobID, actorID, toStatus, request.Reason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.transitionJobStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to change job status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OverrideJobPrice handles POST /api/v1/jobs/{jobId}/price - sets a manual price.
func (s *Server) OverrideJobPrice(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id: " + err.Error(),
		})
	}

	var request PriceOverrideRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	changedByID, err := kernel.UUIDFromString(request.ChangedByID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid changedBy id: " + err.Error(),
		})
	}

	cmd, err := commands.NewOverrideJobPriceCommand(jobID, changedByID, request.NewPriceCents)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid price override: " + err.Error(),
		})
	}

	if handleErr := s.overrideJobPriceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to override job price")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/jobs/{jobId}/payment - records how a
// completed job was paid.
func (s *Server) RecordPayment(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job id: " + err.Error(),
		})
	}

	var request PaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	method, err := job.PaymentMethodFromString(request.Method)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment method: " + err.Error(),
		})
	}

	cmd, err := commands.NewRecordPaymentCommand(jobID, method, request.AmountCents)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment: " + err.Error(),
		})
	}

	if handleErr := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to record payment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWaitlistEntry handles POST /api/v1/waitlist - captures an overflow request.
func (s *Server) CreateWaitlistEntry(ctx echo.Context) error {
	var request NewWaitlistEntryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location: " + err.Error(),
		})
	}

	entryID := kernel.NewUUID()

	cmd, err := commands.NewCreateWaitlistEntryCommand(
		entryID,
		customerID,
		request.Address,
		location,
		request.TierID,
		request.Notes,
		request.ContactPhone,
		request.ContactEmail,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid waitlist data: " + err.Error(),
		})
	}

	if handleErr := s.createWaitlistEntryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to create waitlist entry")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: entryID.String()})
}

// GetWaitlist handles GET /api/v1/waitlist - retrieves all waiting entries.
func (s *Server) GetWaitlist(ctx echo.Context) error {
	query := queries.NewGetWaitlistQuery()

	entries, err := s.getWaitlistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve waitlist",
		})
	}

	response := make([]WaitlistItem, len(entries))
	for i, entry := range entries {
		response[i] = WaitlistItem{
			ID:           entry.ID.String(),
			Address:      entry.Address,
			TierID:       entry.TierID,
			ContactPhone: entry.ContactPhone,
			ContactEmail: entry.ContactEmail,
			CreatedAt:    entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PromoteWaitlistEntry handles POST /api/v1/waitlist/{entryId}/promote -
// converts a waiting entry into a live job.
func (s *Server) PromoteWaitlistEntry(ctx echo.Context) error {
	entryID, err := kernel.UUIDFromString(ctx.Param("entryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid entry id: " + err.Error(),
		})
	}

	jobID := kernel.NewUUID()

	cmd, err := commands.NewPromoteWaitlistEntryCommand(entryID, jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid promotion: " + err.Error(),
		})
	}

	if handleErr := s.promoteWaitlistEntryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to promote waitlist entry")
	}

	return ctx.JSON(http.StatusCreated, PromotionResponse{JobID: jobID.String()})
}

// RemoveWaitlistEntry handles DELETE /api/v1/waitlist/{entryId} - cancels a
// waiting entry. Removing an already promoted or expired entry is a no-op.
func (s *Server) RemoveWaitlistEntry(ctx echo.Context) error {
	entryID, err := kernel.UUIDFromString(ctx.Param("entryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid entry id: " + err.Error(),
		})
	}

	cmd, err := commands.NewRemoveWaitlistEntryCommand(entryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid removal: " + err.Error(),
		})
	}

	if handleErr := s.removeWaitlistEntryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to remove waitlist entry")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPricingTiers handles GET /api/v1/pricing/tiers - retrieves the active tiers.
func (s *Server) GetPricingTiers(ctx echo.Context) error {
	query := queries.NewGetPricingTiersQuery()

	tiers, err := s.getPricingTiersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pricing tiers",
		})
	}

	response := make([]PricingTier, len(tiers))
	for i, tier := range tiers {
		response[i] = PricingTier{
			ID:         tier.ID,
			Label:      tier.Label,
			PriceCents: tier.PriceCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpsertPricingTier handles PUT /api/v1/pricing/tiers/{tierId} - creates or
// edits a tier. Existing jobs keep their frozen quote.
func (s *Server) UpsertPricingTier(ctx echo.Context) error {
	tierID, err := strconv.Atoi(ctx.Param("tierId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tier id: " + err.Error(),
		})
	}

	var request TierUpsertRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	tier, err := pricing.NewTier(tierID, request.Label, request.PriceCents)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tier: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpsertPricingTierCommand(tier)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tier: " + err.Error(),
		})
	}

	if handleErr := s.upsertPricingTierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to store pricing tier")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceCancellationRules handles PUT /api/v1/config/cancellation-rules -
// swaps the full rule table.
func (s *Server) ReplaceCancellationRules(ctx echo.Context) error {
	var request []CancellationRuleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rules := make([]pricing.CancellationRule, 0, len(request))
	for _, item := range request {
		jobType, err := job.TypeFromString(item.JobType)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid job type: " + err.Error(),
			})
		}

		rule, err := pricing.NewCancellationRule(jobType, item.HoursBeforeThreshold,
			item.ChargePercent, item.Description)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid cancellation rule: " + err.Error(),
			})
		}

		rules = append(rules, rule)
	}

	cmd, err := commands.NewReplaceCancellationRulesCommand(rules)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation rules: " + err.Error(),
		})
	}

	if handleErr := s.replaceRulesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to store cancellation rules")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfigureServiceArea handles PUT /api/v1/config/service-area - replaces the
// active service radius.
func (s *Server) ConfigureServiceArea(ctx echo.Context) error {
	var request ServiceAreaRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	center, err := kernel.NewGeoPoint(request.CenterLat, request.CenterLng)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid center: " + err.Error(),
		})
	}

	area, err := kernel.NewServiceArea(center, request.RadiusMiles)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service area: " + err.Error(),
		})
	}

	cmd, err := commands.NewConfigureServiceAreaCommand(area)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service area: " + err.Error(),
		})
	}

	if handleErr := s.configureServiceAreaHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr, "Failed to configure service area")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTodaySummary handles GET /api/v1/dashboard/summary - the daily counters.
func (s *Server) GetTodaySummary(ctx echo.Context) error {
	query, err := queries.NewGetTodaySummaryQuery(time.Now().UTC())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build summary query",
		})
	}

	summary, err := s.getTodaySummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve summary",
		})
	}

	return ctx.JSON(http.StatusOK, TodaySummary{
		JobsRequested:   summary.JobsRequested,
		JobsCompleted:   summary.JobsCompleted,
		JobsCancelled:   summary.JobsCancelled,
		JobsActive:      summary.JobsActive,
		CollectedCents:  summary.CollectedCents,
		WaitlistWaiting: summary.WaitlistWaiting,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// domainError maps domain and application errors onto HTTP status codes.
func (s *Server) domainError(ctx echo.Context, err error, fallback string) error {
	var transitionErr *job.InvalidTransitionError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: transitionErr.Error(),
		})
	case errors.Is(err, job.ErrJobNotPayable) || errors.Is(err, job.ErrJobIsTerminal):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, waitlist.ErrAlreadyPromoted):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
