package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProviderId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceId    uuid.UUID  `gorm:"type:uuid;not null"`
	StartTime    time.Time  `gorm:"not null;index"`
	EndTime      time.Time  `gorm:"not null"`
	Status       string     `gorm:"type:varchar(50);not null;default:'scheduled'"`
	Notes        string     `gorm:"type:text"`
	CancelledAt  *time.Time `gorm:""`
	CompletedAt  *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
