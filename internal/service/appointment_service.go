package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"barberflow-be/pkg/events"
	pktNats "barberflow-be/pkg/nats"

	"github.com/google/uuid"
)

type IAppointmentService interface {
	Create(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Agenda(ctx context.Context, barbershopId uuid.UUID, req *dto.AgendaRequest) ([]*dto.AppointmentResponse, error)
	Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentService struct {
	uowFactory       unitofwork.RepositoryFactory
	eventPublisher   *pktNats.Publisher
	publisherService IPublisherService
}

func NewAppointmentService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
) IAppointmentService {
	return &appointmentService{
		uowFactory:       uowFactory,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
	}
}

func appointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		Id:          a.Id,
		ClientId:    a.ClientId,
		ProviderId:  a.ProviderId,
		ServiceId:   a.ServiceId,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CompletedAt: a.CompletedAt,
		CancelledAt: a.CancelledAt,
		CreatedAt:   a.CreatedAt,
	}
}

func (s *appointmentService) Create(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
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

	endTime := req.StartTime.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	// Reject double booking for the provider. Two bookings overlap when one
	// starts before the other ends.
	existing, err := uow.AppointmentRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.ByProvider{ProviderID: req.ProviderId},
		specification.StartsWithin{From: req.StartTime.Add(-12 * time.Hour), To: endTime},
	)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.Status == entity.AppointmentStatusCancelled || a.Status == entity.AppointmentStatusNoShow {
			continue
		}
		if a.StartTime.Before(endTime) && req.StartTime.Before(a.EndTime) {
			return nil, errors.New("provider already booked for this time")
		}
	}

	appointment := &entity.Appointment{
		Id:           uuid.New(),
		BarbershopId: barbershopId,
		ClientId:     req.ClientId,
		ProviderId:   req.ProviderId,
		ServiceId:    req.ServiceId,
		StartTime:    req.StartTime,
		EndTime:      endTime,
		Status:       entity.AppointmentStatusScheduled,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.AppointmentRepository().Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointmentToResponse(appointment), nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, errors.New("appointment not found")
	}

	next := entity.AppointmentStatus(req.Status)
	if !appointment.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot transition from %s to %s", appointment.Status, next)
	}

	now := time.Now()
	appointment.Status = next
	appointment.UpdatedAt = now
	switch next {
	case entity.AppointmentStatusCompleted:
		appointment.CompletedAt = &now
	case entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow:
		appointment.CancelledAt = &now
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AppointmentRepository().Update(ctx, appointment); err != nil {
		return nil, err
	}

	// A completed visit refreshes the client's recency marker that the
	// churn-alert automation keys on.
	if next == entity.AppointmentStatusCompleted {
		client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: appointment.ClientId})
		if err != nil {
			return nil, err
		}
		if client != nil {
			client.LastVisitAt = &now
			client.UpdatedAt = now
			if err := uow.ClientRepository().Update(ctx, client); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if next == entity.AppointmentStatusCompleted {
		if s.eventPublisher != nil {
			event := events.BaseEvent{
				Type: "APPOINTMENT_COMPLETED",
				Data: map[string]interface{}{
					"appointment_id": appointment.Id,
					"barbershop_id":  appointment.BarbershopId,
					"client_id":      appointment.ClientId,
					"provider_id":    appointment.ProviderId,
				},
				OccurredAt: now,
			}
			if err := s.eventPublisher.Publish(ctx, event); err != nil {
				fmt.Printf("[WARN] Failed to publish APPOINTMENT_COMPLETED event: %v\n", err)
			}
		}

		// Hand the completion to the automation worker for follow-up rules.
		if s.publisherService != nil {
			if err := s.publisherService.PublishAppointmentCompleted(ctx, appointment.Id); err != nil {
				fmt.Printf("[WARN] Failed to enqueue follow-up dispatch: %v\n", err)
			}
		}
	}

	return appointmentToResponse(appointment), nil
}

func (s *appointmentService) Agenda(ctx context.Context, barbershopId uuid.UUID, req *dto.AgendaRequest) ([]*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	day := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, errors.New("invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	specs := []specification.Specification{
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.StartsWithin{From: dayStart, To: dayEnd},
		specification.OrderBy{Field: "start_time"},
	}
	if req.ProviderId != nil {
		specs = append(specs, specification.ByProvider{ProviderID: *req.ProviderId})
	}

	appointments, err := uow.AppointmentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = appointmentToResponse(a)
	}
	return result, nil
}

func (s *appointmentService) Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, errors.New("appointment not found")
	}
	return appointmentToResponse(appointment), nil
}
