package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientId   uuid.UUID `json:"client_id" validate:"required"`
	ProviderId uuid.UUID `json:"provider_id" validate:"required"`
	ServiceId  uuid.UUID `json:"service_id" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	Notes      string    `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled no_show"`
}

type AppointmentResponse struct {
	Id          uuid.UUID  `json:"id"`
	ClientId    uuid.UUID  `json:"client_id"`
	ProviderId  uuid.UUID  `json:"provider_id"`
	ServiceId   uuid.UUID  `json:"service_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AgendaRequest struct {
	Date       string     `query:"date"` // YYYY-MM-DD, defaults to today
	ProviderId *uuid.UUID `query:"provider_id"`
}
