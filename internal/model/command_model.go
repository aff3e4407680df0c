package model

import (
	"time"

	"github.com/google/uuid"
)

type Command struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProviderId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status        string     `gorm:"type:varchar(50);not null;default:'open';index"`
	TotalAmount   float64    `gorm:"type:decimal(10,2);default:0"`
	PaymentMethod string     `gorm:"type:varchar(50)"`
	ClosedAt      *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`

	Items []*CommandItem `gorm:"foreignKey:CommandId"`
}

func (Command) TableName() string {
	return "commands"
}

type CommandItem struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CommandId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceId        uuid.UUID  `gorm:"type:uuid;not null"`
	ProviderId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Description      string     `gorm:"type:varchar(255)"`
	Quantity         int        `gorm:"default:1"`
	UnitPrice        float64    `gorm:"type:decimal(10,2);not null"`
	TotalPrice       float64    `gorm:"type:decimal(10,2);not null"`
	CommissionRate   float64    `gorm:"type:decimal(5,2);default:0"`
	CommissionAmount float64    `gorm:"type:decimal(10,2);default:0"`
	SubscriptionId   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
}

func (CommandItem) TableName() string {
	return "command_items"
}
