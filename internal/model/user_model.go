package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarbershopId  *uuid.UUID `gorm:"type:uuid;index"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName      string     `gorm:"type:varchar(255);not null"`
	PasswordHash  *string    `gorm:"type:varchar(255)"`
	GoogleId      *string    `gorm:"type:varchar(255);index"`
	AvatarURL     string     `gorm:"type:text"`
	Role          string     `gorm:"type:varchar(50);not null;default:'staff'"`
	Status        string     `gorm:"type:varchar(50);not null;default:'active'"`
	EmailVerified bool       `gorm:"default:false"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
