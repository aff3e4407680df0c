package model

import (
	"time"

	"github.com/google/uuid"
)

type Barbershop struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     string    `gorm:"type:varchar(50)"`
	Email     string    `gorm:"type:varchar(255)"`
	Timezone  string    `gorm:"type:varchar(100);default:'America/Sao_Paulo'"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Barbershop) TableName() string {
	return "barbershops"
}

type Client struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(50);index"`
	Email        string     `gorm:"type:varchar(255)"`
	Notes        string     `gorm:"type:text"`
	LastVisitAt  *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}

type Provider struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId               *uuid.UUID `gorm:"type:uuid;index"`
	Name                 string     `gorm:"type:varchar(255);not null"`
	Phone                string     `gorm:"type:varchar(50)"`
	CommissionPercentage float64    `gorm:"type:decimal(5,2);default:0"`
	IsActive             bool       `gorm:"default:true"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

func (Provider) TableName() string {
	return "providers"
}

type Service struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Price           float64   `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int       `gorm:"default:30"`
	IsActive        bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Service) TableName() string {
	return "services"
}
