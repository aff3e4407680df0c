package entity

import (
	"time"

	"github.com/google/uuid"
)

type AutomationRuleType string
type AutomationExecutionStatus string

const (
	AutomationRuleReminder   AutomationRuleType = "reminder"
	AutomationRuleFollowUp   AutomationRuleType = "follow_up"
	AutomationRuleChurnAlert AutomationRuleType = "churn_alert"
	AutomationRulePromotion  AutomationRuleType = "promotion"

	AutomationExecutionPending AutomationExecutionStatus = "pending"
	AutomationExecutionSent    AutomationExecutionStatus = "sent"
	AutomationExecutionFailed  AutomationExecutionStatus = "failed"
)

type AutomationRule struct {
	Id              uuid.UUID
	BarbershopId    uuid.UUID
	Name            string
	Type            AutomationRuleType
	MessageTemplate string
	SendWhatsApp    bool
	NotifyStaff     bool
	// Day offset for follow_up rules (days since completion).
	FollowUpDays int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AutomationExecution struct {
	Id            uuid.UUID
	RuleId        uuid.UUID
	BarbershopId  uuid.UUID
	ClientId      uuid.UUID
	AppointmentId *uuid.UUID
	Status        AutomationExecutionStatus
	Message       string
	ErrorMessage  string
	ExecutedAt    time.Time
	CreatedAt     time.Time
}
