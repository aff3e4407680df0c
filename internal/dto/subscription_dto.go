package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Plans ---

type CreatePlanRequest struct {
	ProviderId            uuid.UUID   `json:"provider_id" validate:"required"`
	Name                  string      `json:"name" validate:"required,min=2"`
	Description           string      `json:"description"`
	MonthlyPrice          float64     `json:"monthly_price" validate:"gt=0"`
	IncludedServicesCount int         `json:"included_services_count" validate:"gt=0"`
	CommissionPercentage  float64     `json:"commission_percentage" validate:"gte=0,lte=100"`
	EnabledServiceIds     []uuid.UUID `json:"enabled_service_ids" validate:"required,min=1"`
}

type UpdatePlanRequest struct {
	Id                    uuid.UUID
	Name                  string      `json:"name" validate:"required,min=2"`
	Description           string      `json:"description"`
	MonthlyPrice          float64     `json:"monthly_price" validate:"gt=0"`
	IncludedServicesCount int         `json:"included_services_count" validate:"gt=0"`
	CommissionPercentage  float64     `json:"commission_percentage" validate:"gte=0,lte=100"`
	EnabledServiceIds     []uuid.UUID `json:"enabled_service_ids" validate:"required,min=1"`
	IsActive              *bool       `json:"is_active"`
}

type PlanResponse struct {
	Id                    uuid.UUID   `json:"id"`
	ProviderId            uuid.UUID   `json:"provider_id"`
	Name                  string      `json:"name"`
	Description           string      `json:"description,omitempty"`
	MonthlyPrice          float64     `json:"monthly_price"`
	IncludedServicesCount int         `json:"included_services_count"`
	CommissionPercentage  float64     `json:"commission_percentage"`
	EnabledServiceIds     []uuid.UUID `json:"enabled_service_ids"`
	IsActive              bool        `json:"is_active"`
	CreatedAt             time.Time   `json:"created_at"`
}

// --- Client subscriptions ---

type CreateSubscriptionRequest struct {
	ClientId uuid.UUID `json:"client_id" validate:"required"`
	PlanId   uuid.UUID `json:"plan_id" validate:"required"`
}

type SubscriptionResponse struct {
	Id                uuid.UUID  `json:"id"`
	ClientId          uuid.UUID  `json:"client_id"`
	ProviderId        uuid.UUID  `json:"provider_id"`
	PlanId            uuid.UUID  `json:"plan_id"`
	Status            string     `json:"status"`
	RemainingServices int        `json:"remaining_services"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	CancelledAt       *time.Time `json:"cancelled_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

type UseServiceRequest struct {
	SubscriptionId uuid.UUID
	ServiceId      uuid.UUID  `json:"service_id" validate:"required"`
	CommandId      *uuid.UUID `json:"command_id"`
}

type ValidateUsageResponse struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason,omitempty"`
	RemainingServices int    `json:"remaining_services"`
}

type UsageResponse struct {
	Id        uuid.UUID  `json:"id"`
	ServiceId uuid.UUID  `json:"service_id"`
	CommandId *uuid.UUID `json:"command_id,omitempty"`
	UsedAt    time.Time  `json:"used_at"`
}

type FinancialRecordResponse struct {
	Id               uuid.UUID  `json:"id"`
	SubscriptionId   uuid.UUID  `json:"subscription_id"`
	Status           string     `json:"status"`
	Amount           float64    `json:"amount"`
	CommissionAmount float64    `json:"commission_amount"`
	NetAmount        float64    `json:"net_amount"`
	PeriodStart      time.Time  `json:"period_start"`
	PeriodEnd        time.Time  `json:"period_end"`
	DueDate          time.Time  `json:"due_date"`
	PaidAt           *time.Time `json:"paid_at"`
}
