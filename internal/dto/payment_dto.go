package dto

import (
	"github.com/google/uuid"
)

type CheckoutRequest struct {
	FinancialRecordId uuid.UUID `json:"financial_record_id" validate:"required"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentNotificationRequest is the gateway's HTTP notification payload. The
// signature must be verified before any state transition.
type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}
