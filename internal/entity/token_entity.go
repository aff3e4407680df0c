package entity

import (
	"time"

	"github.com/google/uuid"
)

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	Revoked   bool
	ExpiresAt time.Time
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}
