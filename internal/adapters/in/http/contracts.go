package http

import (
	"time"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewJobRequest is the POST /api/v1/jobs body.
type NewJobRequest struct {
	CustomerID          string     `json:"customerId"`
	Address             string     `json:"address"`
	Lat                 float64    `json:"lat"`
	Lng                 float64    `json:"lng"`
	JobType             string     `json:"jobType"`
	TierID              *int       `json:"tierId,omitempty"`
	ScheduledFor        *time.Time `json:"scheduledFor,omitempty"`
	SpecialInstructions *string    `json:"specialInstructions,omitempty"`
}

// CreatedResponse returns the id of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// StatusChangeRequest is the POST /api/v1/jobs/{jobId}/status body.
type StatusChangeRequest struct {
	Status  string  `json:"status"`
	ActorID string  `json:"actorId"`
	Reason  *string `json:"reason,omitempty"`
}

// PriceOverrideRequest is the POST /api/v1/jobs/{jobId}/price body.
type PriceOverrideRequest struct {
	NewPriceCents int    `json:"newPriceCents"`
	ChangedByID   string `json:"changedById"`
}

// PaymentRequest is the POST /api/v1/jobs/{jobId}/payment body.
type PaymentRequest struct {
	Method      string `json:"method"`
	AmountCents int    `json:"amountCents"`
}

// JobBoardItem is one row of the GET /api/v1/jobs response.
type JobBoardItem struct {
	ID               string     `json:"id"`
	Address          string     `json:"address"`
	Status           string     `json:"status"`
	JobType          string     `json:"jobType"`
	QuotedPriceCents int        `json:"quotedPriceCents"`
	FinalPriceCents  *int       `json:"finalPriceCents,omitempty"`
	RequestedAt      time.Time  `json:"requestedAt"`
	ScheduledFor     *time.Time `json:"scheduledFor,omitempty"`
}

// NewWaitlistEntryRequest is the POST /api/v1/waitlist body.
type NewWaitlistEntryRequest struct {
	CustomerID   string  `json:"customerId"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	TierID       *int    `json:"tierId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
}

// WaitlistItem is one row of the GET /api/v1/waitlist response.
type WaitlistItem struct {
	ID           string    `json:"id"`
	Address      string    `json:"address"`
	TierID       *int      `json:"tierId,omitempty"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PromotionResponse returns the job created by a waitlist promotion.
type PromotionResponse struct {
	JobID string `json:"jobId"`
}

// PricingTier is one row of the GET /api/v1/pricing/tiers response.
type PricingTier struct {
	ID         int    `json:"id"`
	Label      string `json:"label"`
	PriceCents int    `json:"priceCents"`
}

// TierUpsertRequest is the PUT /api/v1/pricing/tiers/{tierId} body.
type TierUpsertRequest struct {
	Label      string `json:"label"`
	PriceCents int    `json:"priceCents"`
}

// CancellationRuleRequest is one element of the
// PUT /api/v1/config/cancellation-rules body.
type CancellationRuleRequest struct {
	JobType              string   `json:"jobType"`
	HoursBeforeThreshold *float64 `json:"hoursBeforeThreshold,omitempty"`
	ChargePercent        int      `json:"chargePercent"`
	Description          string   `json:"description,omitempty"`
}

// ServiceAreaRequest is the PUT /api/v1/config/service-area body.
type ServiceAreaRequest struct {
	CenterLat   float64 `json:"centerLat"`
	CenterLng   float64 `json:"centerLng"`
	RadiusMiles float64 `json:"radiusMiles"`
}

// TodaySummary is the GET /api/v1/dashboard/summary response.
type TodaySummary struct {
	JobsRequested   int `json:"jobsRequested"`
	JobsCompleted   int `json:"jobsCompleted"`
	JobsCancelled   int `json:"jobsCancelled"`
	JobsActive      int `json:"jobsActive"`
	CollectedCents  int `json:"collectedCents"`
	WaitlistWaiting int `json:"waitlistWaiting"`
}
