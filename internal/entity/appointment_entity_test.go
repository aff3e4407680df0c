package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"scheduled to confirmed", AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to no_show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to no_show", AppointmentStatusConfirmed, AppointmentStatusNoShow, true},
		{"confirmed back to scheduled", AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{"no_show is terminal", AppointmentStatusNoShow, AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}
