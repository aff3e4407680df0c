package dto

import (
	"time"

	"github.com/google/uuid"
)

type BillingSummaryRequest struct {
	From string `query:"from"` // YYYY-MM-DD inclusive
	To   string `query:"to"`   // YYYY-MM-DD inclusive
}

type ProviderCommissionResponse struct {
	ProviderId      uuid.UUID `json:"provider_id"`
	ProviderName    string    `json:"provider_name"`
	CommissionTotal float64   `json:"commission_total"`
	RevenueTotal    float64   `json:"revenue_total"`
	SaleCount       int       `json:"sale_count"`
}

type BillingSummaryResponse struct {
	TotalRevenue     float64                      `json:"total_revenue"`
	TotalCommissions float64                      `json:"total_commissions"`
	SaleCount        int                          `json:"sale_count"`
	AverageTicket    float64                      `json:"average_ticket"`
	Ranking          []ProviderCommissionResponse `json:"ranking"`
	GeneratedAt      time.Time                    `json:"generated_at"`
	// True when the aggregation failed and a previously cached summary was
	// served instead.
	Stale bool `json:"stale,omitempty"`
}
