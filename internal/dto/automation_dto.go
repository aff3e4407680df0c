package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAutomationRuleRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Type            string `json:"type" validate:"required,oneof=reminder follow_up churn_alert promotion"`
	MessageTemplate string `json:"message_template" validate:"required"`
	SendWhatsApp    bool   `json:"send_whatsapp"`
	NotifyStaff     bool   `json:"notify_staff"`
	FollowUpDays    int    `json:"follow_up_days" validate:"gte=0"`
}

type UpdateAutomationRuleRequest struct {
	Id              uuid.UUID
	Name            string `json:"name" validate:"required,min=2"`
	MessageTemplate string `json:"message_template" validate:"required"`
	SendWhatsApp    bool   `json:"send_whatsapp"`
	NotifyStaff     bool   `json:"notify_staff"`
	FollowUpDays    int    `json:"follow_up_days" validate:"gte=0"`
	IsActive        *bool  `json:"is_active"`
}

type AutomationRuleResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	MessageTemplate string    `json:"message_template"`
	SendWhatsApp    bool      `json:"send_whatsapp"`
	NotifyStaff     bool      `json:"notify_staff"`
	FollowUpDays    int       `json:"follow_up_days"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type AutomationExecutionResponse struct {
	Id            uuid.UUID  `json:"id"`
	RuleId        uuid.UUID  `json:"rule_id"`
	ClientId      uuid.UUID  `json:"client_id"`
	AppointmentId *uuid.UUID `json:"appointment_id,omitempty"`
	Status        string     `json:"status"`
	Message       string     `json:"message"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	ExecutedAt    time.Time  `json:"executed_at"`
}

// AppointmentCompletedMessage is the in-process queue payload handed to the
// automation worker when a visit completes.
type AppointmentCompletedMessage struct {
	AppointmentId uuid.UUID `json:"appointment_id"`
}

type RunRulesResponse struct {
	Dispatched int `json:"dispatched"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}
