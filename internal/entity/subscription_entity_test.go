package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClientSubscriptionIsActive(t *testing.T) {
	now := time.Now()

	active := &ClientSubscription{
		Status:  SubscriptionStatusActive,
		EndDate: now.AddDate(0, 1, 0),
	}
	assert.True(t, active.IsActive(now))

	// Lapsed end date trumps the status column.
	lapsed := &ClientSubscription{
		Status:  SubscriptionStatusActive,
		EndDate: now.AddDate(0, 0, -1),
	}
	assert.False(t, lapsed.IsActive(now))

	pending := &ClientSubscription{
		Status:  SubscriptionStatusPendingPayment,
		EndDate: now.AddDate(0, 1, 0),
	}
	assert.False(t, pending.IsActive(now))

	cancelled := &ClientSubscription{
		Status:  SubscriptionStatusCancelled,
		EndDate: now.AddDate(0, 1, 0),
	}
	assert.False(t, cancelled.IsActive(now))
}

func TestPlanCoversService(t *testing.T) {
	covered := uuid.New()
	other := uuid.New()

	plan := &ProviderSubscriptionPlan{
		EnabledServiceIds: []uuid.UUID{covered},
	}
	assert.True(t, plan.CoversService(covered))
	assert.False(t, plan.CoversService(other))

	empty := &ProviderSubscriptionPlan{}
	assert.False(t, empty.CoversService(covered))
}

func TestNewFinancialRecord(t *testing.T) {
	sub := &ClientSubscription{
		Id:           uuid.New(),
		BarbershopId: uuid.New(),
	}
	plan := &ProviderSubscriptionPlan{
		MonthlyPrice:         200,
		CommissionPercentage: 40,
	}
	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	record := NewFinancialRecord(sub, plan, periodStart, periodEnd)

	assert.Equal(t, sub.Id, record.SubscriptionId)
	assert.Equal(t, sub.BarbershopId, record.BarbershopId)
	assert.Equal(t, FinancialRecordStatusPending, record.Status)
	assert.Equal(t, 200.0, record.Amount)
	assert.Equal(t, 80.0, record.CommissionAmount)
	assert.Equal(t, 120.0, record.NetAmount)
	assert.Equal(t, periodStart, record.PeriodStart)
	assert.Equal(t, periodEnd, record.PeriodEnd)
	assert.Equal(t, periodStart.AddDate(0, 0, 5), record.DueDate)
	assert.Nil(t, record.PaidAt)
}
