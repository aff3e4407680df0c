package contract

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	// Plans
	CreatePlan(ctx context.Context, plan *entity.ProviderSubscriptionPlan) error
	UpdatePlan(ctx context.Context, plan *entity.ProviderSubscriptionPlan) error
	DeletePlan(ctx context.Context, id uuid.UUID) error
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.ProviderSubscriptionPlan, error)
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.ProviderSubscriptionPlan, error)

	// Client subscriptions
	CreateSubscription(ctx context.Context, sub *entity.ClientSubscription) error
	UpdateSubscription(ctx context.Context, sub *entity.ClientSubscription) error
	FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.ClientSubscription, error)
	FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientSubscription, error)

	// Usage ledger
	CreateUsage(ctx context.Context, usage *entity.SubscriptionUsage) error
	FindUsages(ctx context.Context, subscriptionId uuid.UUID) ([]*entity.SubscriptionUsage, error)

	// Financial records
	CreateFinancialRecord(ctx context.Context, record *entity.SubscriptionFinancialRecord) error
	UpdateFinancialRecord(ctx context.Context, record *entity.SubscriptionFinancialRecord) error
	FindOneFinancialRecord(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionFinancialRecord, error)
	FindAllFinancialRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionFinancialRecord, error)

	// Admin console stats
	CountActiveSubscriptions(ctx context.Context) (int, error)
	GetGrossRevenue(ctx context.Context) (float64, error)
}
