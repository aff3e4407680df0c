package entity

import (
	"time"

	"github.com/google/uuid"
)

type CommandStatus string

const (
	CommandStatusOpen      CommandStatus = "open"
	CommandStatusClosed    CommandStatus = "closed"
	CommandStatusCancelled CommandStatus = "cancelled"
)

// Command is a point-of-sale transaction. Commission totals are only ever
// aggregated from closed commands.
type Command struct {
	Id            uuid.UUID
	BarbershopId  uuid.UUID
	ClientId      uuid.UUID
	ProviderId    uuid.UUID
	Status        CommandStatus
	TotalAmount   float64
	PaymentMethod string
	ClosedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []CommandItem
}

type CommandItem struct {
	Id               uuid.UUID
	CommandId        uuid.UUID
	ServiceId        uuid.UUID
	ProviderId       uuid.UUID
	Description      string
	Quantity         int
	UnitPrice        float64
	TotalPrice       float64
	CommissionRate   float64 // percentage, 0-100
	CommissionAmount float64
	// Set when the item was redeemed through a client subscription and
	// therefore priced at zero.
	SubscriptionId *uuid.UUID
	CreatedAt      time.Time
}
