package contract

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BarbershopRepository interface {
	Create(ctx context.Context, shop *entity.Barbershop) error
	Update(ctx context.Context, shop *entity.Barbershop) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Barbershop, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Barbershop, error)
	Count(ctx context.Context) (int64, error)
}
