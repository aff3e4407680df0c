package contract

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WhatsAppRepository interface {
	Create(ctx context.Context, instance *entity.WhatsAppInstance) error
	Update(ctx context.Context, instance *entity.WhatsAppInstance) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhatsAppInstance, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhatsAppInstance, error)
}
