package dto

import (
	"time"

	"github.com/google/uuid"
)

type WhatsAppInstanceResponse struct {
	Id           uuid.UUID  `json:"id"`
	InstanceName string     `json:"instance_name"`
	Status       string     `json:"status"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	QrCode       string     `json:"qr_code,omitempty"`
	LastSyncAt   *time.Time `json:"last_sync_at"`
}

type SendMessageRequest struct {
	Phone   string `json:"phone" validate:"required,min=8"`
	Message string `json:"message" validate:"required"`
}

// WhatsAppWebhookRequest is the gateway's connection.update payload.
type WhatsAppWebhookRequest struct {
	Event    string `json:"event"`
	Instance string `json:"instance"`
	Data     struct {
		State       string `json:"state"`
		StatusCode  int    `json:"statusCode"`
		Wuid        string `json:"wuid"`
		PhoneNumber string `json:"phoneNumber"`
	} `json:"data"`
}

type ReconcileResponse struct {
	Status      string `json:"status"`
	PhoneNumber string `json:"phone_number,omitempty"`
	QrCode      string `json:"qr_code,omitempty"`
	// True when a ghost session was detected and the instance was reset.
	Reset bool `json:"reset"`
}
