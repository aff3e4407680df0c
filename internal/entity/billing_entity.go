package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingSummary is the aggregate over closed commands for a barbershop and
// optional date range.
type BillingSummary struct {
	BarbershopId     uuid.UUID
	From             *time.Time
	To               *time.Time
	TotalRevenue     float64
	TotalCommissions float64
	SaleCount        int
	AverageTicket    float64
	Ranking          []ProviderCommission
	GeneratedAt      time.Time
}

// ProviderCommission is one row of the per-provider ranking, sorted
// descending by commission total.
type ProviderCommission struct {
	ProviderId      uuid.UUID
	ProviderName    string
	CommissionTotal float64
	RevenueTotal    float64
	SaleCount       int
}
