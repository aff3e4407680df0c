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

// ICatalogService manages the barbershop's providers and service menu.
type ICatalogService interface {
	GetProviders(ctx context.Context, barbershopId uuid.UUID) ([]*dto.ProviderResponse, error)
	CreateProvider(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateProviderRequest) (*dto.ProviderResponse, error)
	UpdateProvider(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error)
	DeleteProvider(ctx context.Context, barbershopId, id uuid.UUID) error

	GetServices(ctx context.Context, barbershopId uuid.UUID) ([]*dto.ServiceResponse, error)
	CreateService(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, barbershopId, id uuid.UUID) error
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
	}
}

func providerToResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		Id:                   p.Id,
		Name:                 p.Name,
		Phone:                p.Phone,
		CommissionPercentage: p.CommissionPercentage,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
	}
}

func serviceToResponse(sv *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		Id:              sv.Id,
		Name:            sv.Name,
		Price:           sv.Price,
		DurationMinutes: sv.DurationMinutes,
		IsActive:        sv.IsActive,
		CreatedAt:       sv.CreatedAt,
	}
}

func (s *catalogService) GetProviders(ctx context.Context, barbershopId uuid.UUID) ([]*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	providers, err := uow.ProviderRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProviderResponse, len(providers))
	for i, p := range providers {
		result[i] = providerToResponse(p)
	}
	return result, nil
}

func (s *catalogService) CreateProvider(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider := &entity.Provider{
		Id:                   uuid.New(),
		BarbershopId:         barbershopId,
		Name:                 req.Name,
		Phone:                req.Phone,
		CommissionPercentage: req.CommissionPercentage,
		IsActive:             true,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := uow.ProviderRepository().Create(ctx, provider); err != nil {
		return nil, err
	}
	return providerToResponse(provider), nil
}

func (s *catalogService) UpdateProvider(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errors.New("provider not found")
	}

	provider.Name = req.Name
	provider.Phone = req.Phone
	provider.CommissionPercentage = req.CommissionPercentage
	if req.IsActive != nil {
		provider.IsActive = *req.IsActive
	}
	provider.UpdatedAt = time.Now()

	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return nil, err
	}
	return providerToResponse(provider), nil
}

func (s *catalogService) DeleteProvider(ctx context.Context, barbershopId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if provider == nil {
		return errors.New("provider not found")
	}
	return uow.ProviderRepository().Delete(ctx, id)
}

func (s *catalogService) GetServices(ctx context.Context, barbershopId uuid.UUID) ([]*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	services, err := uow.ServiceRepository().FindAll(ctx,
		specification.ByBarbershop{BarbershopID: barbershopId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ServiceResponse, len(services))
	for i, sv := range services {
		result[i] = serviceToResponse(sv)
	}
	return result, nil
}

func (s *catalogService) CreateService(ctx context.Context, barbershopId uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc := &entity.Service{
		Id:              uuid.New(),
		BarbershopId:    barbershopId,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
		return nil, err
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) UpdateService(ctx context.Context, barbershopId uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.New("service not found")
	}

	svc.Name = req.Name
	svc.Price = req.Price
	svc.DurationMinutes = req.DurationMinutes
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.UpdatedAt = time.Now()

	if err := uow.ServiceRepository().Update(ctx, svc); err != nil {
		return nil, err
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) DeleteService(ctx context.Context, barbershopId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByBarbershop{BarbershopID: barbershopId},
	)
	if err != nil {
		return err
	}
	if svc == nil {
		return errors.New("service not found")
	}
	return uow.ServiceRepository().Delete(ctx, id)
}
