package dto

import (
	"time"

	"github.com/google/uuid"
)

type OpenCommandRequest struct {
	ClientId   uuid.UUID `json:"client_id" validate:"required"`
	ProviderId uuid.UUID `json:"provider_id" validate:"required"`
}

type AddCommandItemRequest struct {
	CommandId  uuid.UUID
	ServiceId  uuid.UUID `json:"service_id" validate:"required"`
	ProviderId uuid.UUID `json:"provider_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gt=0"`
	// Unit price override; when nil the service's catalog price applies.
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	// Redeem through an active client subscription; item is priced at zero.
	SubscriptionId *uuid.UUID `json:"subscription_id"`
}

type CloseCommandRequest struct {
	Id            uuid.UUID
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card pix subscription"`
}

type CommandItemResponse struct {
	Id               uuid.UUID  `json:"id"`
	ServiceId        uuid.UUID  `json:"service_id"`
	ProviderId       uuid.UUID  `json:"provider_id"`
	Description      string     `json:"description"`
	Quantity         int        `json:"quantity"`
	UnitPrice        float64    `json:"unit_price"`
	TotalPrice       float64    `json:"total_price"`
	CommissionRate   float64    `json:"commission_rate"`
	CommissionAmount float64    `json:"commission_amount"`
	SubscriptionId   *uuid.UUID `json:"subscription_id,omitempty"`
}

type CommandResponse struct {
	Id            uuid.UUID             `json:"id"`
	ClientId      uuid.UUID             `json:"client_id"`
	ProviderId    uuid.UUID             `json:"provider_id"`
	Status        string                `json:"status"`
	TotalAmount   float64               `json:"total_amount"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	ClosedAt      *time.Time            `json:"closed_at"`
	Items         []CommandItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
}
