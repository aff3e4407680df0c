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

type BarbershopRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BarbershopMapper
}

func NewBarbershopRepository(db *gorm.DB) contract.BarbershopRepository {
	return &BarbershopRepositoryImpl{
		db:     db,
		mapper: mapper.NewBarbershopMapper(),
	}
}

func (r *BarbershopRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BarbershopRepositoryImpl) Create(ctx context.Context, shop *entity.Barbershop) error {
	m := r.mapper.ToModel(shop)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(m)
	return nil
}

func (r *BarbershopRepositoryImpl) Update(ctx context.Context, shop *entity.Barbershop) error {
	m := r.mapper.ToModel(shop)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(m)
	return nil
}

func (r *BarbershopRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Barbershop{}, id).Error
}

func (r *BarbershopRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Barbershop, error) {
	var m model.Barbershop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BarbershopRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Barbershop, error) {
	var models []*model.Barbershop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Barbershop, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BarbershopRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Barbershop{}).Count(&count).Error
	return count, err
}
