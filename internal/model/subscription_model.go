package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProviderSubscriptionPlan struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId          uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderId            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Description           string    `gorm:"type:text"`
	MonthlyPrice          float64   `gorm:"type:decimal(10,2);not null"`
	IncludedServicesCount int       `gorm:"not null;default:0"`
	CommissionPercentage  float64   `gorm:"type:decimal(5,2);default:0"`
	// JSON array of service UUIDs. Legacy rows may hold the array
	// double-encoded as a JSON string; the mapper normalizes both shapes.
	EnabledServiceIds datatypes.JSON `gorm:"type:jsonb"`
	IsActive          bool           `gorm:"default:true"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (ProviderSubscriptionPlan) TableName() string {
	return "provider_subscription_plans"
}

type ClientSubscription struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProviderId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status            string     `gorm:"type:varchar(50);not null;index"`
	RemainingServices int        `gorm:"not null;default:0"`
	StartDate         time.Time  `gorm:"not null"`
	EndDate           time.Time  `gorm:"not null;index"`
	CancelledAt       *time.Time `gorm:""`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (ClientSubscription) TableName() string {
	return "client_subscriptions"
}

type SubscriptionUsage struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceId      uuid.UUID  `gorm:"type:uuid;not null"`
	CommandId      *uuid.UUID `gorm:"type:uuid;index"`
	UsedAt         time.Time  `gorm:"not null"`
}

func (SubscriptionUsage) TableName() string {
	return "subscription_usages"
}

type SubscriptionFinancialRecord struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	BarbershopId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           string     `gorm:"type:varchar(50);not null;index"`
	Amount           float64    `gorm:"type:decimal(10,2);not null"`
	CommissionAmount float64    `gorm:"type:decimal(10,2);not null"`
	NetAmount        float64    `gorm:"type:decimal(10,2);not null"`
	PeriodStart      time.Time  `gorm:"not null"`
	PeriodEnd        time.Time  `gorm:"not null"`
	DueDate          time.Time  `gorm:"not null;index"`
	PaidAt           *time.Time `gorm:""`
	GatewayOrderId   *string    `gorm:"type:varchar(255)"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (SubscriptionFinancialRecord) TableName() string {
	return "subscription_financial_records"
}
