package model

import (
	"time"

	"github.com/google/uuid"
)

type AutomationRule struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Type            string    `gorm:"type:varchar(50);not null;index"`
	MessageTemplate string    `gorm:"type:text;not null"`
	SendWhatsApp    bool      `gorm:"default:true"`
	NotifyStaff     bool      `gorm:"default:false"`
	FollowUpDays    int       `gorm:"default:3"`
	IsActive        bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (AutomationRule) TableName() string {
	return "automation_rules"
}

type AutomationExecution struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RuleId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	BarbershopId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	AppointmentId *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(50);not null;default:'pending'"`
	Message       string     `gorm:"type:text"`
	ErrorMessage  string     `gorm:"type:text"`
	ExecutedAt    time.Time  `gorm:"not null;index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
}

func (AutomationExecution) TableName() string {
	return "automation_executions"
}
