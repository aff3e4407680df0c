package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/pkg/logger"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/events"
	pktNats "barberflow-be/pkg/nats"
	"barberflow-be/pkg/template"
	"barberflow-be/pkg/whatsapp"

	"github.com/google/uuid"
)

const (
	defaultFollowUpDays = 3
	churnThresholdDays  = 30
)

type IAutomationService interface {
	CreateRule(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateAutomationRuleRequest) (*dto.AutomationRuleResponse, error)
	UpdateRule(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateAutomationRuleRequest) (*dto.AutomationRuleResponse, error)
	DeleteRule(ctx context.Context, barbershopId, ruleId uuid.UUID) error
	GetRules(ctx context.Context, barbershopId uuid.UUID) ([]*dto.AutomationRuleResponse, error)
	GetExecutions(ctx context.Context, barbershopId uuid.UUID) ([]*dto.AutomationExecutionResponse, error)

	// RunRules is the operator trigger; it includes promotion rules.
	RunRules(ctx context.Context, barbershopId uuid.UUID) (*dto.RunRulesResponse, error)
	// HandleAppointmentCompleted dispatches zero-day follow_up rules right
	// after a visit; the daily sweep covers the day-offset ones.
	HandleAppointmentCompleted(ctx context.Context, appointmentId uuid.UUID) error
	// Start runs the daily sweep over every active barbershop until the
	// context is cancelled.
	Start(ctx context.Context)
}

type automationService struct {
	uowFactory     unitofwork.RepositoryFactory
	waClient       *whatsapp.Client
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAutomationService(uowFactory unitofwork.RepositoryFactory, waClient *whatsapp.Client, eventPublisher *pktNats.Publisher, log logger.ILogger) IAutomationService {
	return &automationService{
		uowFactory:     uowFactory,
		waClient:       waClient,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func ruleToResponse(r *entity.AutomationRule) *dto.AutomationRuleResponse {
	return &dto.AutomationRuleResponse{
		Id:              r.Id,
		Name:            r.Name,
		Type:            string(r.Type),
		MessageTemplate: r.MessageTemplate,
		SendWhatsApp:    r.SendWhatsApp,
		NotifyStaff:     r.NotifyStaff,
		FollowUpDays:    r.FollowUpDays,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
	}
}

func (s *automationService) CreateRule(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateAutomationRuleRequest) (*dto.AutomationRuleResponse, error) {
	followUpDays := req.FollowUpDays
	if entity.AutomationRuleType(req.Type) == entity.AutomationRuleFollowUp && followUpDays == 0 {
		followUpDays = defaultFollowUpDays
	}

	rule := &entity.AutomationRule{
		Id:              uuid.New(),
		BarbershopId:    barbershopId,
		Name:            req.Name,
		Type:            entity.AutomationRuleType(req.Type),
		MessageTemplate: req.MessageTemplate,
		SendWhatsApp:    req.SendWhatsApp,
		NotifyStaff:     req.NotifyStaff,
		FollowUpDays:    followUpDays,
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AutomationRepository().CreateRule(ctx, rule); err != nil {
		return nil, err
	}
	return ruleToResponse(rule), nil
}

func (s *automationService) UpdateRule(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateAutomationRuleRequest) (*dto.AutomationRuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rule, err := uow.AutomationRepository().FindOneRule(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, errors.New("automation rule not found")
	}

	rule.Name = req.Name
	rule.MessageTemplate = req.MessageTemplate
	rule.SendWhatsApp = req.SendWhatsApp
	rule.NotifyStaff = req.NotifyStaff
	rule.FollowUpDays = req.FollowUpDays
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	rule.UpdatedAt = time.Now()

	if err := uow.AutomationRepository().UpdateRule(ctx, rule); err != nil {
		return nil, err
	}
	return ruleToResponse(rule), nil
}

func (s *automationService) DeleteRule(ctx context.Context, barbershopId, ruleId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rule, err := uow.AutomationRepository().FindOneRule(ctx,
		specification.ByID{ID: ruleId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if rule == nil {
		return errors.New("automation rule not found")
	}
	return uow.AutomationRepository().DeleteRule(ctx, ruleId)
}

func (s *automationService) GetRules(ctx context.Context, barbershopId uuid.UUID) ([]*dto.AutomationRuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rules, err := uow.AutomationRepository().FindAllRules(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AutomationRuleResponse, len(rules))
	for i, r := range rules {
		res[i] = ruleToResponse(r)
	}
	return res, nil
}

func (s *automationService) GetExecutions(ctx context.Context, barbershopId uuid.UUID) ([]*dto.AutomationExecutionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	executions, err := uow.AutomationRepository().FindAllExecutions(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 200},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AutomationExecutionResponse, len(executions))
	for i, e := range executions {
		res[i] = &dto.AutomationExecutionResponse{
			Id:            e.Id,
			RuleId:        e.RuleId,
			ClientId:      e.ClientId,
			AppointmentId: e.AppointmentId,
			Status:        string(e.Status),
			Message:       e.Message,
			ErrorMessage:  e.ErrorMessage,
			ExecutedAt:    e.ExecutedAt,
		}
	}
	return res, nil
}

// candidate pairs a client with the optional appointment that triggered the
// rule, plus the template data rendered into the outgoing message.
type candidate struct {
	client        *entity.Client
	appointmentId *uuid.UUID
	data          map[string]string
}

func (s *automationService) RunRules(ctx context.Context, barbershopId uuid.UUID) (*dto.RunRulesResponse, error) {
	return s.runRules(ctx, barbershopId, true)
}

func (s *automationService) runRules(ctx context.Context, barbershopId uuid.UUID, includePromotions bool) (*dto.RunRulesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	shop, err := uow.BarbershopRepository().FindOne(ctx, specification.ByID{ID: barbershopId})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("barbershop not found")
	}

	rules, err := uow.AutomationRepository().FindAllRules(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.Filter("is_active", true),
	)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(shop.Timezone)
	if err != nil {
		loc = time.UTC
	}

	res := &dto.RunRulesResponse{}
	for _, rule := range rules {
		if rule.Type == entity.AutomationRulePromotion && !includePromotions {
			continue
		}

		candidates, err := s.collectCandidates(ctx, shop, rule, loc)
		if err != nil {
			s.logger.Error("AutomationService", "Failed to collect candidates", map[string]interface{}{
				"rule_id": rule.Id,
				"error":   err.Error(),
			})
			res.Failed++
			continue
		}

		for _, cand := range candidates {
			dispatched, err := s.dispatch(ctx, shop, rule, cand)
			switch {
			case err != nil:
				res.Failed++
			case dispatched:
				res.Dispatched++
			default:
				res.Skipped++
			}
		}
	}
	return res, nil
}

// collectCandidates resolves the rule type into the clients to message today.
func (s *automationService) collectCandidates(ctx context.Context, shop *entity.Barbershop, rule *entity.AutomationRule, loc *time.Location) ([]candidate, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now().In(loc)

	switch rule.Type {
	case entity.AutomationRuleReminder:
		from, to := dayWindow(now.AddDate(0, 0, 1))
		appointments, err := uow.AppointmentRepository().FindAll(ctx,
			specification.ByBarbershop{BarbershopID: shop.Id},
			specification.StartsWithin{From: from, To: to},
		)
		if err != nil {
			return nil, err
		}
		upcoming := appointments[:0]
		for _, a := range appointments {
			if a.Status == entity.AppointmentStatusScheduled || a.Status == entity.AppointmentStatusConfirmed {
				upcoming = append(upcoming, a)
			}
		}
		return s.appointmentCandidates(ctx, shop, upcoming, loc)

	case entity.AutomationRuleFollowUp:
		days := rule.FollowUpDays
		if days <= 0 {
			days = defaultFollowUpDays
		}
		from, to := dayWindow(now.AddDate(0, 0, -days))
		appointments, err := uow.AppointmentRepository().FindAll(ctx,
			specification.ByBarbershop{BarbershopID: shop.Id},
			specification.ByStatus{Status: string(entity.AppointmentStatusCompleted)},
			specification.CompletedWithin{From: from, To: to},
		)
		if err != nil {
			return nil, err
		}
		return s.appointmentCandidates(ctx, shop, appointments, loc)

	case entity.AutomationRuleChurnAlert:
		cutoff := now.AddDate(0, 0, -churnThresholdDays)
		clients, err := uow.ClientRepository().FindAll(ctx,
			specification.ByBarbershop{BarbershopID: shop.Id},
			specification.LastVisitBefore{Cutoff: cutoff},
		)
		if err != nil {
			return nil, err
		}
		return s.clientCandidates(shop, clients), nil

	case entity.AutomationRulePromotion:
		clients, err := uow.ClientRepository().FindAll(ctx,
			specification.ByBarbershop{BarbershopID: shop.Id},
		)
		if err != nil {
			return nil, err
		}
		return s.clientCandidates(shop, clients), nil

	default:
		return nil, fmt.Errorf("unknown rule type %q", rule.Type)
	}
}

func (s *automationService) appointmentCandidates(ctx context.Context, shop *entity.Barbershop, appointments []*entity.Appointment, loc *time.Location) ([]candidate, error) {
	if len(appointments) == 0 {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	services, err := uow.ServiceRepository().FindAll(ctx, specification.ByBarbershop{BarbershopID: shop.Id})
	if err != nil {
		return nil, err
	}
	serviceNames := make(map[uuid.UUID]string, len(services))
	for _, svc := range services {
		serviceNames[svc.Id] = svc.Name
	}

	providers, err := uow.ProviderRepository().FindAll(ctx, specification.ByBarbershop{BarbershopID: shop.Id})
	if err != nil {
		return nil, err
	}
	providerNames := make(map[uuid.UUID]string, len(providers))
	for _, p := range providers {
		providerNames[p.Id] = p.Name
	}

	var candidates []candidate
	for _, a := range appointments {
		client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: a.ClientId})
		if err != nil {
			return nil, err
		}
		if client == nil {
			continue
		}
		appointmentId := a.Id
		start := a.StartTime.In(loc)
		candidates = append(candidates, candidate{
			client:        client,
			appointmentId: &appointmentId,
			data: map[string]string{
				"client_name":      client.Name,
				"appointment_date": template.FormatDate(start),
				"appointment_time": template.FormatTime(start),
				"service_name":     serviceNames[a.ServiceId],
				"provider_name":    providerNames[a.ProviderId],
				"barbershop_name":  shop.Name,
			},
		})
	}
	return candidates, nil
}

func (s *automationService) clientCandidates(shop *entity.Barbershop, clients []*entity.Client) []candidate {
	candidates := make([]candidate, 0, len(clients))
	for _, c := range clients {
		candidates = append(candidates, candidate{
			client: c,
			data: map[string]string{
				"client_name":     c.Name,
				"barbershop_name": shop.Name,
			},
		})
	}
	return candidates
}

// dispatch sends one rendered message to one client. It returns (false, nil)
// when the candidate was already handled today. Delivery failures are
// recorded on the execution row and never propagate past this call.
func (s *automationService) dispatch(ctx context.Context, shop *entity.Barbershop, rule *entity.AutomationRule, cand candidate) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	done, err := uow.AutomationRepository().HasExecutionToday(ctx, rule.Id, cand.client.Id)
	if err != nil {
		return false, err
	}
	if done {
		return false, nil
	}

	message := template.Render(rule.MessageTemplate, cand.data)
	execution := &entity.AutomationExecution{
		Id:            uuid.New(),
		RuleId:        rule.Id,
		BarbershopId:  shop.Id,
		ClientId:      cand.client.Id,
		AppointmentId: cand.appointmentId,
		Status:        entity.AutomationExecutionPending,
		Message:       message,
		CreatedAt:     time.Now(),
	}
	if err := uow.AutomationRepository().CreateExecution(ctx, execution); err != nil {
		return false, err
	}

	var sendErr error
	if rule.SendWhatsApp {
		sendErr = s.sendWhatsApp(ctx, shop.Id, cand.client.Phone, message)
	}

	if rule.NotifyStaff && s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "AUTOMATION_ALERT",
			Data: map[string]interface{}{
				"barbershop_id": shop.Id,
				"rule_id":       rule.Id,
				"rule_name":     rule.Name,
				"rule_type":     string(rule.Type),
				"client_id":     cand.client.Id,
				"client_name":   cand.client.Name,
				"message":       message,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish AUTOMATION_ALERT event: %v\n", err)
		}
	}

	execution.ExecutedAt = time.Now()
	if sendErr != nil {
		execution.Status = entity.AutomationExecutionFailed
		execution.ErrorMessage = sendErr.Error()
	} else {
		execution.Status = entity.AutomationExecutionSent
	}
	if err := uow.AutomationRepository().UpdateExecution(ctx, execution); err != nil {
		return false, err
	}

	if sendErr != nil {
		return false, sendErr
	}
	return true, nil
}

func (s *automationService) sendWhatsApp(ctx context.Context, barbershopId uuid.UUID, phone, message string) error {
	if phone == "" {
		return errors.New("client has no phone number")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	instance, err := uow.WhatsAppRepository().FindOne(ctx, specification.ByBarbershop{BarbershopID: barbershopId})
	if err != nil {
		return err
	}
	if instance == nil || instance.Status != entity.WhatsAppStatusConnected {
		return errors.New("whatsapp instance is not connected")
	}
	return s.waClient.SendText(ctx, instance.InstanceName, phone, message)
}

func (s *automationService) HandleAppointmentCompleted(ctx context.Context, appointmentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: appointmentId})
	if err != nil {
		return err
	}
	if appointment == nil {
		return errors.New("appointment not found")
	}

	shop, err := uow.BarbershopRepository().FindOne(ctx, specification.ByID{ID: appointment.BarbershopId})
	if err != nil {
		return err
	}
	if shop == nil {
		return errors.New("barbershop not found")
	}

	rules, err := uow.AutomationRepository().FindAllRules(ctx,
		specification.ByBarbershop{BarbershopID: shop.Id},
		specification.Filter("type", string(entity.AutomationRuleFollowUp)),
		specification.Filter("is_active", true),
	)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(shop.Timezone)
	if err != nil {
		loc = time.UTC
	}

	for _, rule := range rules {
		// Day-offset follow-ups belong to the daily sweep.
		if rule.FollowUpDays > 0 {
			continue
		}
		candidates, err := s.appointmentCandidates(ctx, shop, []*entity.Appointment{appointment}, loc)
		if err != nil {
			return err
		}
		for _, cand := range candidates {
			if _, err := s.dispatch(ctx, shop, rule, cand); err != nil {
				s.logger.Error("AutomationService", "Follow-up dispatch failed", map[string]interface{}{
					"rule_id":        rule.Id,
					"appointment_id": appointmentId,
					"error":          err.Error(),
				})
			}
		}
	}
	return nil
}

func (s *automationService) Start(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	s.logger.Info("AutomationService", "Daily automation sweep started", nil)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("AutomationService", "Daily automation sweep stopped", nil)
			return
		case <-ticker.C:
			s.sweepAllShops(ctx)
		}
	}
}

func (s *automationService) sweepAllShops(ctx context.Context) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	shops, err := uow.BarbershopRepository().FindAll(ctx, specification.Filter("is_active", true))
	if err != nil {
		s.logger.Error("AutomationService", "Failed to list barbershops for sweep", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for _, shop := range shops {
		res, err := s.runRules(ctx, shop.Id, false)
		if err != nil {
			s.logger.Error("AutomationService", "Sweep failed for barbershop", map[string]interface{}{
				"barbershop_id": shop.Id,
				"error":         err.Error(),
			})
			continue
		}
		s.logger.Info("AutomationService", "Sweep finished for barbershop", map[string]interface{}{
			"barbershop_id": shop.Id,
			"dispatched":    res.Dispatched,
			"failed":        res.Failed,
			"skipped":       res.Skipped,
		})
	}
}

// dayWindow returns the [00:00, 24:00) bounds of t's calendar day in t's
// location.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
