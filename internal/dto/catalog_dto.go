package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Providers ---

type CreateProviderRequest struct {
	Name                 string  `json:"name" validate:"required,min=2"`
	Phone                string  `json:"phone"`
	CommissionPercentage float64 `json:"commission_percentage" validate:"gte=0,lte=100"`
}

type UpdateProviderRequest struct {
	Id                   uuid.UUID
	Name                 string  `json:"name" validate:"required,min=2"`
	Phone                string  `json:"phone"`
	CommissionPercentage float64 `json:"commission_percentage" validate:"gte=0,lte=100"`
	IsActive             *bool   `json:"is_active"`
}

type ProviderResponse struct {
	Id                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone,omitempty"`
	CommissionPercentage float64   `json:"commission_percentage"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

// --- Services ---

type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0"`
}

type UpdateServiceRequest struct {
	Id              uuid.UUID
	Name            string  `json:"name" validate:"required,min=2"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0"`
	IsActive        *bool   `json:"is_active"`
}

type ServiceResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
