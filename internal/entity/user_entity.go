package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleOwner UserRole = "owner"
	UserRoleStaff UserRole = "staff"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	Id            uuid.UUID
	BarbershopId  *uuid.UUID // nil for platform admins
	Email         string
	FullName      string
	PasswordHash  *string
	GoogleId      *string
	AvatarURL     string
	Role          UserRole
	Status        UserStatus
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
