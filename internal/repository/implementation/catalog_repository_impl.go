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

type ProviderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProviderMapper
}

func NewProviderRepository(db *gorm.DB) contract.ProviderRepository {
	return &ProviderRepositoryImpl{
		db:     db,
		mapper: mapper.NewProviderMapper(),
	}
}

func (r *ProviderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProviderRepositoryImpl) Create(ctx context.Context, provider *entity.Provider) error {
	m := r.mapper.ToModel(provider)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*provider = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProviderRepositoryImpl) Update(ctx context.Context, provider *entity.Provider) error {
	m := r.mapper.ToModel(provider)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*provider = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProviderRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Provider{}, id).Error
}

func (r *ProviderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Provider, error) {
	var m model.Provider
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProviderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Provider, error) {
	var models []*model.Provider
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Provider, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceMapper
}

func NewServiceRepository(db *gorm.DB) contract.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceMapper(),
	}
}

func (r *ServiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ToModel(service)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, id).Error
}

func (r *ServiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	var m model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	var models []*model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Service, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
