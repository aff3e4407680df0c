package model

import (
	"time"

	"github.com/google/uuid"
)

type WhatsAppInstance struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	InstanceName string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status       string     `gorm:"type:varchar(50);not null;default:'disconnected'"`
	PhoneNumber  string     `gorm:"type:varchar(50)"`
	QrCode       string     `gorm:"type:text"`
	LastSyncAt   *time.Time `gorm:""`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (WhatsAppInstance) TableName() string {
	return "whatsapp_instances"
}
