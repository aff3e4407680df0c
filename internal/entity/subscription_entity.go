package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type FinancialRecordStatus string

const (
	SubscriptionStatusActive         SubscriptionStatus = "active"
	SubscriptionStatusCancelled      SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired        SubscriptionStatus = "expired"
	SubscriptionStatusPendingPayment SubscriptionStatus = "pending_payment"

	FinancialRecordStatusPending FinancialRecordStatus = "pending"
	FinancialRecordStatusPaid    FinancialRecordStatus = "paid"
	FinancialRecordStatusOverdue FinancialRecordStatus = "overdue"
)

// ProviderSubscriptionPlan is a provider-scoped monthly plan a client can
// subscribe to. EnabledServiceIds is the set of covered services.
type ProviderSubscriptionPlan struct {
	Id                    uuid.UUID
	BarbershopId          uuid.UUID
	ProviderId            uuid.UUID
	Name                  string
	Description           string
	MonthlyPrice          float64
	IncludedServicesCount int
	CommissionPercentage  float64 // percentage, 0-100
	EnabledServiceIds     []uuid.UUID
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CoversService reports whether the given service is in the plan's enabled
// list.
func (p *ProviderSubscriptionPlan) CoversService(serviceId uuid.UUID) bool {
	for _, id := range p.EnabledServiceIds {
		if id == serviceId {
			return true
		}
	}
	return false
}

type ClientSubscription struct {
	Id                uuid.UUID
	BarbershopId      uuid.UUID
	ClientId          uuid.UUID
	ProviderId        uuid.UUID
	PlanId            uuid.UUID
	Status            SubscriptionStatus
	RemainingServices int
	StartDate         time.Time
	EndDate           time.Time
	CancelledAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive treats a past EndDate as expired even before the row is updated;
// expiry is lazy, not enforced atomically.
func (s *ClientSubscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate.After(now)
}

type SubscriptionUsage struct {
	Id             uuid.UUID
	SubscriptionId uuid.UUID
	ServiceId      uuid.UUID
	CommandId      *uuid.UUID
	UsedAt         time.Time
}

// SubscriptionFinancialRecord is one billing row per subscription period.
// Amounts are computed from the plan at creation time and never recomputed.
type SubscriptionFinancialRecord struct {
	Id               uuid.UUID
	SubscriptionId   uuid.UUID
	BarbershopId     uuid.UUID
	Status           FinancialRecordStatus
	Amount           float64
	CommissionAmount float64
	NetAmount        float64
	PeriodStart      time.Time
	PeriodEnd        time.Time
	DueDate          time.Time
	PaidAt           *time.Time
	GatewayOrderId   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewFinancialRecord derives the period amounts from the plan.
func NewFinancialRecord(sub *ClientSubscription, plan *ProviderSubscriptionPlan, periodStart, periodEnd time.Time) *SubscriptionFinancialRecord {
	amount := plan.MonthlyPrice
	commission := amount * plan.CommissionPercentage / 100
	return &SubscriptionFinancialRecord{
		Id:               uuid.New(),
		SubscriptionId:   sub.Id,
		BarbershopId:     sub.BarbershopId,
		Status:           FinancialRecordStatusPending,
		Amount:           amount,
		CommissionAmount: commission,
		NetAmount:        amount - commission,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		DueDate:          periodStart.AddDate(0, 0, 5),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}
