package implementation

import (
	"context"
	"errors"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/mapper"
	"barberflow-be/internal/model"
	"barberflow-be/internal/repository/contract"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// itemBatchSize bounds IN clauses when fetching line items for many commands.
const itemBatchSize = 200

type CommandRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommandMapper
}

func NewCommandRepository(db *gorm.DB) contract.CommandRepository {
	return &CommandRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommandMapper(),
	}
}

func (r *CommandRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommandRepositoryImpl) Create(ctx context.Context, command *entity.Command) error {
	m := r.mapper.ToModel(command)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*command = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommandRepositoryImpl) Update(ctx context.Context, command *entity.Command) error {
	m := r.mapper.ToModel(command)
	// Items are managed through CreateItem; avoid GORM upserting them here.
	m.Items = nil
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *CommandRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Command, error) {
	var m model.Command
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Items")
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommandRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Command, error) {
	var models []*model.Command
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Command, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CommandRepositoryImpl) CreateItem(ctx context.Context, item *entity.CommandItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *CommandRepositoryImpl) FindItemsByCommandIds(ctx context.Context, commandIds []uuid.UUID) ([]*entity.CommandItem, error) {
	var all []*entity.CommandItem
	for start := 0; start < len(commandIds); start += itemBatchSize {
		end := start + itemBatchSize
		if end > len(commandIds) {
			end = len(commandIds)
		}
		var models []*model.CommandItem
		err := r.db.WithContext(ctx).
			Where("command_id IN ?", commandIds[start:end]).
			Find(&models).Error
		if err != nil {
			return nil, err
		}
		for _, m := range models {
			all = append(all, r.mapper.ItemToEntity(m))
		}
	}
	return all, nil
}
