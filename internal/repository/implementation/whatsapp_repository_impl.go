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

type WhatsAppRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WhatsAppMapper
}

func NewWhatsAppRepository(db *gorm.DB) contract.WhatsAppRepository {
	return &WhatsAppRepositoryImpl{
		db:     db,
		mapper: mapper.NewWhatsAppMapper(),
	}
}

func (r *WhatsAppRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WhatsAppRepositoryImpl) Create(ctx context.Context, instance *entity.WhatsAppInstance) error {
	m := r.mapper.ToModel(instance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*instance = *r.mapper.ToEntity(m)
	return nil
}

func (r *WhatsAppRepositoryImpl) Update(ctx context.Context, instance *entity.WhatsAppInstance) error {
	m := r.mapper.ToModel(instance)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*instance = *r.mapper.ToEntity(m)
	return nil
}

func (r *WhatsAppRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WhatsAppInstance{}, id).Error
}

func (r *WhatsAppRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhatsAppInstance, error) {
	var m model.WhatsAppInstance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WhatsAppRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhatsAppInstance, error) {
	var models []*model.WhatsAppInstance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.WhatsAppInstance, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
