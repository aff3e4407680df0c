package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type Appointment struct {
	Id           uuid.UUID
	BarbershopId uuid.UUID
	ClientId     uuid.UUID
	ProviderId   uuid.UUID
	ServiceId    uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	Status       AppointmentStatus
	Notes        string
	CancelledAt  *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanTransitionTo guards the appointment lifecycle. Completed, cancelled and
// no_show are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusScheduled:
		return next == AppointmentStatusConfirmed ||
			next == AppointmentStatusCompleted ||
			next == AppointmentStatusCancelled ||
			next == AppointmentStatusNoShow
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted ||
			next == AppointmentStatusCancelled ||
			next == AppointmentStatusNoShow
	default:
		return false
	}
}
