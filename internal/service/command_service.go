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

	"barberflow-be/pkg/cache"
	"barberflow-be/pkg/events"
	pktNats "barberflow-be/pkg/nats"

	"github.com/google/uuid"
)

type ICommandService interface {
	Open(ctx context.Context, barbershopId uuid.UUID, req *dto.OpenCommandRequest) (*dto.CommandResponse, error)
	AddItem(ctx context.Context, barbershopId uuid.UUID, req *dto.AddCommandItemRequest) (*dto.CommandResponse, error)
	Close(ctx context.Context, barbershopId uuid.UUID, req *dto.CloseCommandRequest) (*dto.CommandResponse, error)
	Cancel(ctx context.Context, barbershopId, id uuid.UUID) error
	Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.CommandResponse, error)
	GetAll(ctx context.Context, barbershopId uuid.UUID) ([]*dto.CommandResponse, error)
}

type commandService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	billingCache   *cache.Cache
	emailService   mailer.IEmailService
}

func NewCommandService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	billingCache *cache.Cache,
	emailService mailer.IEmailService,
) ICommandService {
	return &commandService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		billingCache:   billingCache,
		emailService:   emailService,
	}
}

func commandItemToResponse(i *entity.CommandItem) dto.CommandItemResponse {
	return dto.CommandItemResponse{
		Id:               i.Id,
		ServiceId:        i.ServiceId,
		ProviderId:       i.ProviderId,
		Description:      i.Description,
		Quantity:         i.Quantity,
		UnitPrice:        i.UnitPrice,
		TotalPrice:       i.TotalPrice,
		CommissionRate:   i.CommissionRate,
		CommissionAmount: i.CommissionAmount,
		SubscriptionId:   i.SubscriptionId,
	}
}

func commandToResponse(c *entity.Command) *dto.CommandResponse {
	items := make([]dto.CommandItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = commandItemToResponse(&item)
	}
	return &dto.CommandResponse{
		Id:            c.Id,
		ClientId:      c.ClientId,
		ProviderId:    c.ProviderId,
		Status:        string(c.Status),
		TotalAmount:   c.TotalAmount,
		PaymentMethod: c.PaymentMethod,
		ClosedAt:      c.ClosedAt,
		Items:         items,
		CreatedAt:     c.CreatedAt,
	}
}

func (s *commandService) Open(ctx context.Context, barbershopId uuid.UUID, req *dto.OpenCommandRequest) (*dto.CommandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

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

	command := &entity.Command{
		Id:           uuid.New(),
		BarbershopId: barbershopId,
		ClientId:     req.ClientId,
		ProviderId:   req.ProviderId,
		Status:       entity.CommandStatusOpen,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.CommandRepository().Create(ctx, command); err != nil {
		return nil, err
	}
	return commandToResponse(command), nil
}

func (s *commandService) AddItem(ctx context.Context, barbershopId uuid.UUID, req *dto.AddCommandItemRequest) (*dto.CommandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	command, err := uow.CommandRepository().FindOne(ctx,
		specification.ByID{ID: req.CommandId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if command == nil {
		return nil, errors.New("command not found")
	}
	if command.Status != entity.CommandStatusOpen {
		return nil, errors.New("command is not open")
	}

	svc, err := uow.ServiceRepository().FindOne(ctx,
		specification.ByID{ID: req.ServiceId},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.New("service not found")
	}

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

	unitPrice := svc.Price
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	commissionRate := provider.CommissionPercentage

	if req.SubscriptionId != nil {
		// Redemptions are validated here and debited at close, inside the
		// closing transaction. The item is priced at zero either way.
		sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
			specification.ByID{ID: *req.SubscriptionId},
			specification.ByBarbershop{BarbershopID: barbershopId},
		)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, errors.New("subscription not found")
		}
		if sub.ClientId != command.ClientId {
			return nil, errors.New("subscription belongs to a different client")
		}

		plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, errors.New("plan not found")
		}
		if err := validateUsage(sub, plan, req.ServiceId, time.Now()); err != nil {
			return nil, err
		}

		unitPrice = 0
		commissionRate = plan.CommissionPercentage
	}

	totalPrice := unitPrice * float64(req.Quantity)
	item := &entity.CommandItem{
		Id:               uuid.New(),
		CommandId:        command.Id,
		ServiceId:        req.ServiceId,
		ProviderId:       req.ProviderId,
		Description:      svc.Name,
		Quantity:         req.Quantity,
		UnitPrice:        unitPrice,
		TotalPrice:       totalPrice,
		CommissionRate:   commissionRate,
		CommissionAmount: totalPrice * commissionRate / 100,
		SubscriptionId:   req.SubscriptionId,
		CreatedAt:        time.Now(),
	}

	if err := uow.CommandRepository().CreateItem(ctx, item); err != nil {
		return nil, err
	}

	command.Items = append(command.Items, *item)
	command.TotalAmount += totalPrice
	command.UpdatedAt = time.Now()
	if err := uow.CommandRepository().Update(ctx, command); err != nil {
		return nil, err
	}

	return commandToResponse(command), nil
}

func (s *commandService) Close(ctx context.Context, barbershopId uuid.UUID, req *dto.CloseCommandRequest) (*dto.CommandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	command, err := uow.CommandRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if command == nil {
		return nil, errors.New("command not found")
	}
	if command.Status != entity.CommandStatusOpen {
		return nil, errors.New("command is not open")
	}
	if len(command.Items) == 0 {
		return nil, errors.New("cannot close a command without items")
	}

	now := time.Now()

	// Debit every subscription redemption inside this transaction so a
	// failed decrement leaves the command open and the counters untouched.
	total := 0.0
	for i := range command.Items {
		item := &command.Items[i]
		total += item.TotalPrice

		if item.SubscriptionId == nil {
			continue
		}

		sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
			specification.ByID{ID: *item.SubscriptionId},
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
		if err := validateUsage(sub, plan, item.ServiceId, now); err != nil {
			return nil, err
		}

		sub.RemainingServices--
		sub.UpdatedAt = now
		if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
			return nil, err
		}

		usage := &entity.SubscriptionUsage{
			Id:             uuid.New(),
			SubscriptionId: sub.Id,
			ServiceId:      item.ServiceId,
			CommandId:      &command.Id,
			UsedAt:         now,
		}
		if err := uow.SubscriptionRepository().CreateUsage(ctx, usage); err != nil {
			return nil, err
		}
	}

	command.Status = entity.CommandStatusClosed
	command.TotalAmount = total
	command.PaymentMethod = req.PaymentMethod
	command.ClosedAt = &now
	command.UpdatedAt = now

	if err := uow.CommandRepository().Update(ctx, command); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Closed commands change the billing aggregates, drop the tenant's
	// cached summaries.
	if s.billingCache != nil {
		s.billingCache.DeletePrefix("billing:" + barbershopId.String())
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "COMMAND_CLOSED",
			Data: map[string]interface{}{
				"command_id":    command.Id,
				"barbershop_id": barbershopId,
				"client_id":     command.ClientId,
				"provider_id":   command.ProviderId,
				"total_amount":  command.TotalAmount,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish COMMAND_CLOSED event: %v\n", err)
		}
	}

	// Receipt is best effort.
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: command.ClientId})
	if err == nil && client != nil && client.Email != "" && s.emailService != nil {
		go func(email, name string, amount float64, closedAt time.Time) {
			if mailErr := s.emailService.SendReceipt(email, name, amount, closedAt); mailErr != nil {
				fmt.Printf("Error sending receipt email: %v\n", mailErr)
			}
		}(client.Email, client.Name, command.TotalAmount, now)
	}

	return commandToResponse(command), nil
}

func (s *commandService) Cancel(ctx context.Context, barbershopId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	command, err := uow.CommandRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if command == nil {
		return errors.New("command not found")
	}
	if command.Status != entity.CommandStatusOpen {
		return errors.New("only open commands can be cancelled")
	}

	command.Status = entity.CommandStatusCancelled
	command.UpdatedAt = time.Now()
	return uow.CommandRepository().Update(ctx, command)
}

func (s *commandService) Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.CommandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	command, err := uow.CommandRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if command == nil {
		return nil, errors.New("command not found")
	}
	return commandToResponse(command), nil
}

func (s *commandService) GetAll(ctx context.Context, barbershopId uuid.UUID) ([]*dto.CommandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	commands, err := uow.CommandRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommandResponse, len(commands))
	for i, c := range commands {
		result[i] = commandToResponse(c)
	}
	return result, nil
}
