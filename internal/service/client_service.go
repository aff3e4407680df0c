package service

import (
	"context"
	"errors"
	"time"

	"barberflow-be/internal/dto"
	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"
	"barberflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IClientService interface {
	GetAll(ctx context.Context, barbershopId uuid.UUID) ([]*dto.ClientResponse, error)
	Create(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.ClientResponse, error)
	Update(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, barbershopId, id uuid.UUID) error
}

type clientService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewClientService(uowFactory unitofwork.RepositoryFactory) IClientService {
	return &clientService{
		uowFactory: uowFactory,
	}
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		Id:          c.Id,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Notes:       c.Notes,
		LastVisitAt: c.LastVisitAt,
		CreatedAt:   c.CreatedAt,
	}
}

func (s *clientService) GetAll(ctx context.Context, barbershopId uuid.UUID) ([]*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clients, err := uow.ClientRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = clientToResponse(c)
	}
	return result, nil
}

func (s *clientService) Create(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client := &entity.Client{
		Id:           uuid.New(),
		BarbershopId: barbershopId,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.ClientRepository().Create(ctx, client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) Show(ctx context.Context, barbershopId, id uuid.UUID) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}
	return clientToResponse(client), nil
}

func (s *clientService) Update(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = req.Email
	client.Notes = req.Notes
	client.UpdatedAt = time.Now()

	if err := uow.ClientRepository().Update(ctx, client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) Delete(ctx context.Context, barbershopId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}
	return uow.ClientRepository().Delete(ctx, id)
}
