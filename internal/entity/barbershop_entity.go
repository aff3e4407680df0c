package entity

import (
	"time"

	"github.com/google/uuid"
)

type Barbershop struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	Phone     string
	Email     string
	Timezone  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Client struct {
	Id           uuid.UUID
	BarbershopId uuid.UUID
	Name         string
	Phone        string // WhatsApp destination, E.164 digits
	Email        string
	Notes        string
	LastVisitAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Provider struct {
	Id           uuid.UUID
	BarbershopId uuid.UUID
	UserId       *uuid.UUID
	Name         string
	Phone        string
	// Default commission applied to command items when the item has no
	// plan-specific override.
	CommissionPercentage float64
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Service struct {
	Id              uuid.UUID
	BarbershopId    uuid.UUID
	Name            string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
