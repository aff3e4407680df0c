package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/pkg/mailer"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/events"
	pktNats "barberflow-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrSubscriptionNotActive = errors.New("subscription is not active")
	ErrNoRemainingServices   = errors.New("no remaining services in the current period")
	ErrServiceNotCovered     = errors.New("service is not covered by the plan")
)

type ISubscriptionService interface {
	// Plans
	CreatePlan(ctx context.Context, barbershopId uuid.UUID, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, barbershopId, id uuid.UUID) error
	GetPlans(ctx context.Context, barbershopId uuid.UUID) ([]*dto.PlanResponse, error)

	// Client subscriptions
	Create(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.SubscriptionResponse, error)
	GetByClient(ctx context.Context, barbershopId, clientId uuid.UUID) ([]*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, barbershopId, id uuid.UUID) error
	Renew(ctx context.Context, barbershopId, id uuid.UUID) (*dto.SubscriptionResponse, error)

	// Usage
	UseService(ctx context.Context, barbershopId uuid.UUID, req *dto.UseServiceRequest) error
	ValidateUsage(ctx context.Context, barbershopId, subscriptionId, serviceId uuid.UUID) (*dto.ValidateUsageResponse, error)
	GetUsages(ctx context.Context, barbershopId, subscriptionId uuid.UUID) ([]*dto.UsageResponse, error)

	// Financials
	GetFinancialRecords(ctx context.Context, barbershopId uuid.UUID) ([]*dto.FinancialRecordResponse, error)
	MarkOverdueRecords(ctx context.Context) (int, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, emailService mailer.IEmailService) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailService:   emailService,
	}
}

func planToResponse(p *entity.ProviderSubscriptionPlan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:                    p.Id,
		ProviderId:            p.ProviderId,
		Name:                  p.Name,
		Description:           p.Description,
		MonthlyPrice:          p.MonthlyPrice,
		IncludedServicesCount: p.IncludedServicesCount,
		CommissionPercentage:  p.CommissionPercentage,
		EnabledServiceIds:     p.EnabledServiceIds,
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
	}
}

func subscriptionToResponse(s *entity.ClientSubscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		Id:                s.Id,
		ClientId:          s.ClientId,
		ProviderId:        s.ProviderId,
		PlanId:            s.PlanId,
		Status:            string(s.Status),
		RemainingServices: s.RemainingServices,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		CancelledAt:       s.CancelledAt,
		CreatedAt:         s.CreatedAt,
	}
}

func (s *subscriptionService) CreatePlan(ctx context.Context, barbershopId uuid.UUID, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx,
		specification.ByID{ID: req.ProviderId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errors.New("provider not found")
	}

	plan := &entity.ProviderSubscriptionPlan{
		Id:                    uuid.New(),
		BarbershopId:          barbershopId,
		ProviderId:            req.ProviderId,
		Name:                  req.Name,
		Description:           req.Description,
		MonthlyPrice:          req.MonthlyPrice,
		IncludedServicesCount: req.IncludedServicesCount,
		CommissionPercentage:  req.CommissionPercentage,
		EnabledServiceIds:     req.EnabledServiceIds,
		IsActive:              true,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	if err := uow.SubscriptionRepository().CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return planToResponse(plan), nil
}

func (s *subscriptionService) UpdatePlan(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.MonthlyPrice = req.MonthlyPrice
	plan.IncludedServicesCount = req.IncludedServicesCount
	plan.CommissionPercentage = req.CommissionPercentage
	plan.EnabledServiceIds = req.EnabledServiceIds
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	plan.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return planToResponse(plan), nil
}

func (s *subscriptionService) DeletePlan(ctx context.Context, barbershopId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if plan == nil {
		return errors.New("plan not found")
	}

	// Plans with live subscribers are deactivated, not removed.
	subs, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
		specification.FilterBy{Field: "plan_id", Value: id},
		specification.ByStatus{Status: string(entity.SubscriptionStatusActive)},
	)
	if err != nil {
		return err
	}
	if len(subs) > 0 {
		plan.IsActive = false
		plan.UpdatedAt = time.Now()
		return uow.SubscriptionRepository().UpdatePlan(ctx, plan)
	}

	return uow.SubscriptionRepository().DeletePlan(ctx, id)
}

func (s *subscriptionService) GetPlans(ctx context.Context, barbershopId uuid.UUID) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, len(plans))
	for i, p := range plans {
		result[i] = planToResponse(p)
	}
	return result, nil
}

func (s *subscriptionService) Create(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx,
		specification.ByID{ID: req.PlanId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}
	if !plan.IsActive {
		return nil, errors.New("plan is not active")
	}

	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: req.ClientId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	// The duplicate check and the insert share the transaction; without it a
	// concurrent request could slip a second active subscription in between.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// One live subscription per (client, provider); a second plan of the
	// same provider is rejected too. Unpaid pendings inside their period
	// block as well, or two pendings could both activate on payment.
	existing, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
		specification.ByClient{ClientID: req.ClientId},
		specification.ByProvider{ProviderID: plan.ProviderId},
	)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, e := range existing {
		if e.IsActive(now) || (e.Status == entity.SubscriptionStatusPendingPayment && e.EndDate.After(now)) {
			return nil, errors.New("client already has an active subscription with this provider")
		}
	}

	// New subscriptions wait for the first payment; the gateway webhook
	// flips them active.
	sub := &entity.ClientSubscription{
		Id:                uuid.New(),
		BarbershopId:      barbershopId,
		ClientId:          req.ClientId,
		ProviderId:        plan.ProviderId,
		PlanId:            plan.Id,
		Status:            entity.SubscriptionStatusPendingPayment,
		RemainingServices: plan.IncludedServicesCount,
		StartDate:         now,
		EndDate:           now.AddDate(0, 1, 0),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uow.SubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	// Exactly one financial record for the opening period.
	record := entity.NewFinancialRecord(sub, plan, sub.StartDate, sub.EndDate)
	if err := uow.SubscriptionRepository().CreateFinancialRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "SUBSCRIPTION_CREATED",
			Data: map[string]interface{}{
				"subscription_id": sub.Id,
				"barbershop_id":   barbershopId,
				"client_id":       sub.ClientId,
				"client_name":     client.Name,
				"plan_name":       plan.Name,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CREATED event: %v\n", err)
		}
	}

	return subscriptionToResponse(sub), nil
}

func (s *subscriptionService) Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found")
	}
	return subscriptionToResponse(sub), nil
}

func (s *subscriptionService) GetByClient(ctx context.Context, barbershopId, clientId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.ByClient{ClientID: clientId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		result[i] = subscriptionToResponse(sub)
	}
	return result, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, barbershopId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if sub == nil {
		return errors.New("subscription not found")
	}
	if sub.Status == entity.SubscriptionStatusCancelled {
		return nil
	}

	now := time.Now()
	sub.Status = entity.SubscriptionStatusCancelled
	sub.CancelledAt = &now
	sub.UpdatedAt = now

	return uow.SubscriptionRepository().UpdateSubscription(ctx, sub)
}

func (s *subscriptionService) Renew(ctx context.Context, barbershopId, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found")
	}
	if sub.Status == entity.SubscriptionStatusCancelled {
		return nil, errors.New("cannot renew a cancelled subscription")
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// The new period starts where the old one ended, one calendar month,
	// with the allowance reset. One financial record per renewal.
	periodStart := sub.EndDate
	periodEnd := periodStart.AddDate(0, 1, 0)

	sub.Status = entity.SubscriptionStatusActive
	sub.RemainingServices = plan.IncludedServicesCount
	sub.EndDate = periodEnd
	sub.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	record := entity.NewFinancialRecord(sub, plan, periodStart, periodEnd)
	if err := uow.SubscriptionRepository().CreateFinancialRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return subscriptionToResponse(sub), nil
}

// validateUsage applies the redemption rules in precedence order: an
// exhausted allowance is reported before plan coverage.
func validateUsage(sub *entity.ClientSubscription, plan *entity.ProviderSubscriptionPlan, serviceId uuid.UUID, now time.Time) error {
	if !sub.IsActive(now) {
		return ErrSubscriptionNotActive
	}
	if sub.RemainingServices <= 0 {
		return ErrNoRemainingServices
	}
	if !plan.CoversService(serviceId) {
		return ErrServiceNotCovered
	}
	return nil
}

func (s *subscriptionService) ValidateUsage(ctx context.Context, barbershopId, subscriptionId, serviceId uuid.UUID) (*dto.ValidateUsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByID{ID: subscriptionId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found")
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	resp := &dto.ValidateUsageResponse{RemainingServices: sub.RemainingServices}
	if err := validateUsage(sub, plan, serviceId, time.Now()); err != nil {
		resp.Allowed = false
		resp.Reason = err.Error()
		return resp, nil
	}
	resp.Allowed = true
	return resp, nil
}

func (s *subscriptionService) UseService(ctx context.Context, barbershopId uuid.UUID, req *dto.UseServiceRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Decrement and usage row commit atomically; a failure after the
	// decrement must roll the counter back.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByID{ID: req.SubscriptionId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if sub == nil {
		return errors.New("subscription not found")
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return err
	}
	if plan == nil {
		return errors.New("plan not found")
	}

	if err := validateUsage(sub, plan, req.ServiceId, time.Now()); err != nil {
		return err
	}

	sub.RemainingServices--
	sub.UpdatedAt = time.Now()
	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return err
	}

	usage := &entity.SubscriptionUsage{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		ServiceId:      req.ServiceId,
		CommandId:      req.CommandId,
		UsedAt:         time.Now(),
	}
	if err := uow.SubscriptionRepository().CreateUsage(ctx, usage); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *subscriptionService) GetUsages(ctx context.Context, barbershopId, subscriptionId uuid.UUID) ([]*dto.UsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByID{ID: subscriptionId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found")
	}

	usages, err := uow.SubscriptionRepository().FindUsages(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UsageResponse, len(usages))
	for i, u := range usages {
		result[i] = &dto.UsageResponse{
			Id:        u.Id,
			ServiceId: u.ServiceId,
			CommandId: u.CommandId,
			UsedAt:    u.UsedAt,
		}
	}
	return result, nil
}

func (s *subscriptionService) GetFinancialRecords(ctx context.Context, barbershopId uuid.UUID) ([]*dto.FinancialRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.SubscriptionRepository().FindAllFinancialRecords(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "period_start", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FinancialRecordResponse, len(records))
	for i, r := range records {
		result[i] = &dto.FinancialRecordResponse{
			Id:               r.Id,
			SubscriptionId:   r.SubscriptionId,
			Status:           string(r.Status),
			Amount:           r.Amount,
			CommissionAmount: r.CommissionAmount,
			NetAmount:        r.NetAmount,
			PeriodStart:      r.PeriodStart,
			PeriodEnd:        r.PeriodEnd,
			DueDate:          r.DueDate,
			PaidAt:           r.PaidAt,
		}
	}
	return result, nil
}

func (s *subscriptionService) MarkOverdueRecords(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.SubscriptionRepository().FindAllFinancialRecords(ctx,
		specification.ByStatus{Status: string(entity.FinancialRecordStatusPending)},
		specification.DueBefore{Cutoff: time.Now()},
	)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, r := range records {
		r.Status = entity.FinancialRecordStatusOverdue
		r.UpdatedAt = time.Now()
		if err := uow.SubscriptionRepository().UpdateFinancialRecord(ctx, r); err != nil {
			fmt.Printf("[WARN] Failed to mark record %s overdue: %v\n", r.Id, err)
			continue
		}
		marked++
		s.notifyOverdue(ctx, uow, r)
	}
	return marked, nil
}

// notifyOverdue mails the client behind a freshly overdue record. Best
// effort; the record is already marked and a mail failure must not undo
// the sweep.
func (s *subscriptionService) notifyOverdue(ctx context.Context, uow unitofwork.UnitOfWork, r *entity.SubscriptionFinancialRecord) {
	if s.emailService == nil {
		return
	}
	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: r.SubscriptionId})
	if err != nil || sub == nil {
		return
	}
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: sub.ClientId})
	if err != nil || client == nil || client.Email == "" {
		return
	}
	if err := s.emailService.SendOverdueNotice(client.Email, client.Name, r.Amount, r.DueDate); err != nil {
		fmt.Printf("[WARN] Failed to send overdue notice for record %s: %v\n", r.Id, err)
	}
}
