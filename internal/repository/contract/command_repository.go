package contract

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CommandRepository interface {
	Create(ctx context.Context, command *entity.Command) error
	Update(ctx context.Context, command *entity.Command) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Command, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Command, error)

	CreateItem(ctx context.Context, item *entity.CommandItem) error
	// FindItemsByCommandIds fetches line items for the given commands,
	// chunking the id list to keep IN clauses bounded.
	FindItemsByCommandIds(ctx context.Context, commandIds []uuid.UUID) ([]*entity.CommandItem, error)
}
