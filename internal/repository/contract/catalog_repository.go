package contract

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	Update(ctx context.Context, provider *entity.Provider) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Provider, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Provider, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
}
