package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/events"
	pktNats "barberflow-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	Checkout(ctx context.Context, barbershopId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Checkout creates a gateway transaction for a pending financial record. The
// record id doubles as the gateway order id so the webhook can find it back.
func (s *paymentService) Checkout(ctx context.Context, barbershopId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.SubscriptionRepository().FindOneFinancialRecord(ctx,
		specification.ByID{ID: req.FinancialRecordId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("financial record not found")
	}
	if record.Status == entity.FinancialRecordStatusPaid {
		return nil, errors.New("financial record is already paid")
	}

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: record.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found for financial record")
	}

	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: sub.ClientId})
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found for subscription")
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	planName := "Subscription"
	if plan != nil {
		planName = plan.Name
	}

	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/app/subscriptions?payment=success", frontendURL)

	orderId := record.Id.String()
	grossAmount := int64(record.Amount)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: grossAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: client.Name,
			Email: client.Email,
			Phone: client.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    record.SubscriptionId.String(),
				Price: grossAmount,
				Qty:   1,
				Name:  planName,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	record.GatewayOrderId = &orderId
	record.UpdatedAt = time.Now()
	if err := uow.SubscriptionRepository().UpdateFinancialRecord(ctx, record); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes the gateway webhook. Signature is
// SHA512(order_id + status_code + gross_amount + server_key); anything that
// fails the check is rejected before touching the database.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK] Signature mismatch for order %s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	recordId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	record, err := uow.SubscriptionRepository().FindOneFinancialRecord(ctx, specification.ByID{ID: recordId})
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("financial record not found")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if record.Status == entity.FinancialRecordStatusPaid {
			// Gateway retries notifications, nothing left to do.
			return nil
		}
		now := time.Now()
		record.Status = entity.FinancialRecordStatusPaid
		record.PaidAt = &now
		record.UpdatedAt = now
		if err := uow.SubscriptionRepository().UpdateFinancialRecord(ctx, record); err != nil {
			return err
		}

		sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: record.SubscriptionId})
		if err != nil {
			return err
		}
		if sub != nil && sub.Status == entity.SubscriptionStatusPendingPayment {
			sub.Status = entity.SubscriptionStatusActive
			sub.UpdatedAt = now
			if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
				return err
			}
		}

		if err := uow.Commit(); err != nil {
			return err
		}

		if s.eventPublisher != nil {
			evt := events.BaseEvent{
				Type: "SUBSCRIPTION_PAYMENT_RECEIVED",
				Data: map[string]interface{}{
					"financial_record_id": record.Id,
					"subscription_id":     record.SubscriptionId,
					"barbershop_id":       record.BarbershopId,
					"amount":              record.Amount,
				},
				OccurredAt: time.Now(),
			}
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_PAYMENT_RECEIVED event: %v\n", err)
			}
		}
		return nil

	case "deny", "cancel", "expire":
		// The record stays pending and becomes overdue past its due date,
		// so a failed attempt never blocks a retry.
		fmt.Printf("[WEBHOOK] Payment failed for record %s (status %s)\n", recordId, req.TransactionStatus)
		return nil

	case "pending":
		return nil

	default:
		fmt.Printf("[WEBHOOK] Unknown transaction status %q for record %s\n", req.TransactionStatus, recordId)
		return nil
	}
}
