package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"barberflow-be/internal/config"
	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/pkg/logger"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/whatsapp"

	"github.com/google/uuid"
)

type IWhatsAppService interface {
	Connect(ctx context.Context, barbershopId uuid.UUID) (*dto.WhatsAppInstanceResponse, error)
	Status(ctx context.Context, barbershopId uuid.UUID) (*dto.WhatsAppInstanceResponse, error)
	Disconnect(ctx context.Context, barbershopId uuid.UUID) error
	Reconcile(ctx context.Context, barbershopId uuid.UUID) (*dto.ReconcileResponse, error)
	SendTest(ctx context.Context, barbershopId uuid.UUID, req *dto.SendMessageRequest) error
	HandleWebhook(ctx context.Context, req *dto.WhatsAppWebhookRequest) error
	// Start runs the reconciliation sweep ticker until ctx is cancelled.
	// The webhook is the primary signal; the sweep catches dropped events.
	Start(ctx context.Context)
}

type whatsAppService struct {
	uowFactory unitofwork.RepositoryFactory
	client     *whatsapp.Client
	cfg        config.WhatsAppConfig
	logger     logger.ILogger
}

func NewWhatsAppService(uowFactory unitofwork.RepositoryFactory, client *whatsapp.Client, cfg config.WhatsAppConfig, log logger.ILogger) IWhatsAppService {
	return &whatsAppService{
		uowFactory: uowFactory,
		client:     client,
		cfg:        cfg,
		logger:     log,
	}
}

func instanceToResponse(i *entity.WhatsAppInstance) *dto.WhatsAppInstanceResponse {
	return &dto.WhatsAppInstanceResponse{
		Id:           i.Id,
		InstanceName: i.InstanceName,
		Status:       string(i.Status),
		PhoneNumber:  i.PhoneNumber,
		QrCode:       i.QrCode,
		LastSyncAt:   i.LastSyncAt,
	}
}

// phoneFromJid extracts the phone digits from a "5511999999999@s.whatsapp.net"
// style jid.
func phoneFromJid(jid string) string {
	if idx := strings.Index(jid, "@"); idx > 0 {
		return jid[:idx]
	}
	return jid
}

func instanceName(barbershopId uuid.UUID) string {
	return "barberflow-" + barbershopId.String()
}

// gatewayKnows reports whether the gateway's instance list still carries the
// named instance.
func (s *whatsAppService) gatewayKnows(ctx context.Context, name string) (bool, error) {
	infos, err := s.client.FetchInstances(ctx)
	if err != nil {
		return false, err
	}
	for _, info := range infos {
		if info.InstanceName == name {
			return true, nil
		}
	}
	return false, nil
}

// Connect provisions the gateway instance when missing and returns a fresh
// pairing QR.
func (s *whatsAppService) Connect(ctx context.Context, barbershopId uuid.UUID) (*dto.WhatsAppInstanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.ByBarbershop{BarbershopID: barbershopId})
	if err != nil {
		return nil, err
	}

	name := instanceName(barbershopId)
	if instance == nil {
		if err := s.client.CreateInstance(ctx, name); err != nil {
			return nil, fmt.Errorf("failed to create gateway instance: %w", err)
		}
		instance = &entity.WhatsAppInstance{
			Id:           uuid.New(),
			BarbershopId: barbershopId,
			InstanceName: name,
			Status:       entity.WhatsAppStatusConnecting,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := uow.WhatsAppRepository().Create(ctx, instance); err != nil {
			return nil, err
		}
	}

	if s.cfg.WebhookURL != "" {
		if err := s.client.SetWebhook(ctx, instance.InstanceName, s.cfg.WebhookURL); err != nil {
			s.logger.Warn("WhatsAppService", "Failed to register gateway webhook", map[string]interface{}{
				"instance": instance.InstanceName,
				"error":    err.Error(),
			})
		}
	}

	qr, err := s.client.Connect(ctx, instance.InstanceName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pairing QR: %w", err)
	}

	instance.Status = entity.WhatsAppStatusConnecting
	instance.QrCode = qr.Base64
	instance.UpdatedAt = time.Now()
	if err := uow.WhatsAppRepository().Update(ctx, instance); err != nil {
		return nil, err
	}
	return instanceToResponse(instance), nil
}

func (s *whatsAppService) Status(ctx context.Context, barbershopId uuid.UUID) (*dto.WhatsAppInstanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.ByBarbershop{BarbershopID: barbershopId})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return &dto.WhatsAppInstanceResponse{Status: string(entity.WhatsAppStatusDisconnected)}, nil
	}
	return instanceToResponse(instance), nil
}

func (s *whatsAppService) Disconnect(ctx context.Context, barbershopId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.ByBarbershop{BarbershopID: barbershopId})
	if err != nil {
		return err
	}
	if instance == nil {
		return errors.New("whatsapp instance not found")
	}

	if err := s.client.Logout(ctx, instance.InstanceName); err != nil {
		s.logger.Warn("WhatsAppService", "Gateway logout failed, marking disconnected anyway", map[string]interface{}{
			"instance": instance.InstanceName,
			"error":    err.Error(),
		})
	}

	instance.Status = entity.WhatsAppStatusDisconnected
	instance.PhoneNumber = ""
	instance.QrCode = ""
	instance.UpdatedAt = time.Now()
	return uow.WhatsAppRepository().Update(ctx, instance)
}

// Reconcile converges the local row with the gateway's live state. The ghost
// case (state open, no paired owner) gets a forced logout and a fresh QR;
// without the reset the gateway keeps reporting a session nobody can use.
func (s *whatsAppService) Reconcile(ctx context.Context, barbershopId uuid.UUID) (*dto.ReconcileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.ByBarbershop{BarbershopID: barbershopId})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, errors.New("whatsapp instance not found")
	}

	now := time.Now()
	state, err := s.client.GetConnectionState(ctx, instance.InstanceName)
	if err != nil {
		// A state error alone can be a transient gateway failure. Only the
		// instance list distinguishes "gone" from "flaky"; recreate solely
		// when the name is missing from it.
		known, listErr := s.gatewayKnows(ctx, instance.InstanceName)
		if listErr != nil || known {
			return nil, fmt.Errorf("gateway state unavailable: %w", err)
		}
		if err := s.client.CreateInstance(ctx, instance.InstanceName); err != nil {
			return nil, fmt.Errorf("failed to recreate gateway instance: %w", err)
		}
		if s.cfg.WebhookURL != "" {
			if err := s.client.SetWebhook(ctx, instance.InstanceName, s.cfg.WebhookURL); err != nil {
				s.logger.Warn("WhatsAppService", "Failed to re-register gateway webhook", map[string]interface{}{
					"instance": instance.InstanceName,
					"error":    err.Error(),
				})
			}
		}
		qr, qrErr := s.client.Connect(ctx, instance.InstanceName)
		if qrErr != nil {
			return nil, qrErr
		}
		instance.Status = entity.WhatsAppStatusConnecting
		instance.PhoneNumber = ""
		instance.QrCode = qr.Base64
		instance.LastSyncAt = &now
		instance.UpdatedAt = now
		if err := uow.WhatsAppRepository().Update(ctx, instance); err != nil {
			return nil, err
		}
		return &dto.ReconcileResponse{
			Status: string(instance.Status),
			QrCode: instance.QrCode,
			Reset:  true,
		}, nil
	}

	switch {
	case state.State == "open" && state.OwnerJid == "":
		// Ghost session: the gateway thinks it is live but no device ever
		// paired. Logout, restart and hand out a new QR.
		if err := s.client.Logout(ctx, instance.InstanceName); err != nil {
			s.logger.Warn("WhatsAppService", "Ghost logout failed", map[string]interface{}{
				"instance": instance.InstanceName,
				"error":    err.Error(),
			})
		}
		if err := s.client.RestartInstance(ctx, instance.InstanceName); err != nil {
			s.logger.Warn("WhatsAppService", "Ghost restart failed", map[string]interface{}{
				"instance": instance.InstanceName,
				"error":    err.Error(),
			})
		}
		if s.cfg.WebhookURL != "" {
			if err := s.client.SetWebhook(ctx, instance.InstanceName, s.cfg.WebhookURL); err != nil {
				s.logger.Warn("WhatsAppService", "Failed to re-register gateway webhook", map[string]interface{}{
					"instance": instance.InstanceName,
					"error":    err.Error(),
				})
			}
		}
		qr, err := s.client.Connect(ctx, instance.InstanceName)
		if err != nil {
			return nil, err
		}
		instance.Status = entity.WhatsAppStatusDisconnected
		instance.PhoneNumber = ""
		instance.QrCode = qr.Base64
		instance.LastSyncAt = &now
		instance.UpdatedAt = now
		if err := uow.WhatsAppRepository().Update(ctx, instance); err != nil {
			return nil, err
		}
		return &dto.ReconcileResponse{
			Status: string(instance.Status),
			QrCode: instance.QrCode,
			Reset:  true,
		}, nil

	case state.State == "open":
		phone := state.PhoneNumber
		if phone == "" {
			phone = phoneFromJid(state.OwnerJid)
		}
		instance.Status = entity.WhatsAppStatusConnected
		instance.PhoneNumber = phone
		instance.QrCode = ""
		instance.LastSyncAt = &now
		instance.UpdatedAt = now
		if err := uow.WhatsAppRepository().Update(ctx, instance); err != nil {
			return nil, err
		}
		return &dto.ReconcileResponse{
			Status:      string(instance.Status),
			PhoneNumber: instance.PhoneNumber,
		}, nil

	default:
		instance.Status = entity.WhatsAppStatusDisconnected
		instance.LastSyncAt = &now
		instance.UpdatedAt = now
		if err := uow.WhatsAppRepository().Update(ctx, instance); err != nil {
			return nil, err
		}
		return &dto.ReconcileResponse{Status: string(instance.Status)}, nil
	}
}

func (s *whatsAppService) SendTest(ctx context.Context, barbershopId uuid.UUID, req *dto.SendMessageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.ByBarbershop{BarbershopID: barbershopId})
	if err != nil {
		return err
	}
	if instance == nil {
		return errors.New("whatsapp instance not found")
	}
	if instance.Status != entity.WhatsAppStatusConnected {
		return errors.New("whatsapp instance is not connected")
	}
	return s.client.SendText(ctx, instance.InstanceName, req.Phone, req.Message)
}

// HandleWebhook applies gateway connection.update events to the local row.
// Events for unknown instances are dropped.
func (s *whatsAppService) HandleWebhook(ctx context.Context, req *dto.WhatsAppWebhookRequest) error {
	if req.Event != "connection.update" && req.Event != "qrcode.updated" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.Filter("instance_name", req.Instance))
	if err != nil {
		return err
	}
	if instance == nil {
		s.logger.Warn("WhatsAppService", "Webhook for unknown instance", map[string]interface{}{
			"instance": req.Instance,
			"event":    req.Event,
		})
		return nil
	}

	now := time.Now()
	switch req.Data.State {
	case "open":
		phone := req.Data.PhoneNumber
		if phone == "" {
			phone = phoneFromJid(req.Data.Wuid)
		}
		instance.Status = entity.WhatsAppStatusConnected
		instance.PhoneNumber = phone
		instance.QrCode = ""
	case "connecting":
		instance.Status = entity.WhatsAppStatusConnecting
	case "close":
		instance.Status = entity.WhatsAppStatusDisconnected
		instance.PhoneNumber = ""
	default:
		// qrcode.updated events carry no state, keep the current one.
	}
	instance.LastSyncAt = &now
	instance.UpdatedAt = now
	return uow.WhatsAppRepository().Update(ctx, instance)
}

func (s *whatsAppService) Start(ctx context.Context) {
	interval := time.Duration(s.cfg.SweepIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("WhatsAppService", "Reconciliation sweep started", map[string]interface{}{
		"interval": interval.String(),
	})
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("WhatsAppService", "Reconciliation sweep stopped", nil)
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *whatsAppService) sweep(ctx context.Context) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	instances, err := uow.WhatsAppRepository().FindAll(ctx)
	if err != nil {
		s.logger.Error("WhatsAppService", "Failed to list instances for sweep", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for _, instance := range instances {
		if _, err := s.Reconcile(ctx, instance.BarbershopId); err != nil {
			s.logger.Error("WhatsAppService", "Sweep reconcile failed", map[string]interface{}{
				"instance": instance.InstanceName,
				"error":    err.Error(),
			})
		}
	}
}
