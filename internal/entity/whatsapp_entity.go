package entity

import (
	"time"

	"github.com/google/uuid"
)

type WhatsAppStatus string

const (
	WhatsAppStatusDisconnected WhatsAppStatus = "disconnected"
	WhatsAppStatusConnecting   WhatsAppStatus = "connecting"
	WhatsAppStatusConnected    WhatsAppStatus = "connected"
)

// WhatsAppInstance mirrors one gateway session per barbershop. Status,
// PhoneNumber and QrCode converge with the gateway's live state through the
// webhook handler and the reconciliation sweep; convergence is eventual, not
// transactional.
type WhatsAppInstance struct {
	Id           uuid.UUID
	BarbershopId uuid.UUID
	InstanceName string
	Status       WhatsAppStatus
	PhoneNumber  string
	QrCode       string
	LastSyncAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
