package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType configures how an event code fans out to inboxes.
// TargetType: SELF (user_id from payload), STAFF (barbershop staff),
// ADMIN, BROADCAST.
type NotificationType struct {
	Code        string `gorm:"type:varchar(100);primaryKey"`
	DisplayName string `gorm:"type:varchar(255);not null"`
	Template    string `gorm:"type:text"`
	TargetType  string `gorm:"type:varchar(50);not null;default:'STAFF'"`
	IsActive    bool   `gorm:"default:true"`
}

func (NotificationType) TableName() string {
	return "notification_types"
}

type Notification struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	BarbershopID *uuid.UUID     `gorm:"type:uuid;index"`
	TypeCode     string         `gorm:"type:varchar(100);not null"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Message      string         `gorm:"type:text"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
	IsRead       bool           `gorm:"default:false;index"`
	ReadAt       *time.Time     `gorm:"type:timestamptz"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
