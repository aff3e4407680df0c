package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Super-admin console ---

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type PlatformStatsResponse struct {
	TotalBarbershops    int64   `json:"total_barbershops"`
	TotalUsers          int64   `json:"total_users"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	GrossRevenue        float64 `json:"gross_revenue"`
}

type AdminBarbershopResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateBarbershopStatusRequest struct {
	Id       uuid.UUID
	IsActive bool `json:"is_active"`
}

// --- Log console ---

type SystemLogResponse struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Module    string                 `json:"module,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
