package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,min=8"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes"`
}

type UpdateClientRequest struct {
	Id    uuid.UUID
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,min=8"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes"`
}

type ClientResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	LastVisitAt *time.Time `json:"last_visit_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
