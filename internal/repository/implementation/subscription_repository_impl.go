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

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) CreatePlan(ctx context.Context, plan *entity.ProviderSubscriptionPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdatePlan(ctx context.Context, plan *entity.ProviderSubscriptionPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) DeletePlan(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProviderSubscriptionPlan{}, id).Error
}

func (r *SubscriptionRepositoryImpl) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.ProviderSubscriptionPlan, error) {
	var m model.ProviderSubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.ProviderSubscriptionPlan, error) {
	var models []*model.ProviderSubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ProviderSubscriptionPlan, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PlanToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CreateSubscription(ctx context.Context, sub *entity.ClientSubscription) error {
	m := r.mapper.SubscriptionToModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateSubscription(ctx context.Context, sub *entity.ClientSubscription) error {
	m := r.mapper.SubscriptionToModel(sub)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.ClientSubscription, error) {
	var m model.ClientSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubscriptionToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientSubscription, error) {
	var models []*model.ClientSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ClientSubscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SubscriptionToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CreateUsage(ctx context.Context, usage *entity.SubscriptionUsage) error {
	m := r.mapper.UsageToModel(usage)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*usage = *r.mapper.UsageToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindUsages(ctx context.Context, subscriptionId uuid.UUID) ([]*entity.SubscriptionUsage, error) {
	var models []*model.SubscriptionUsage
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionId).
		Order("used_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.SubscriptionUsage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UsageToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CreateFinancialRecord(ctx context.Context, record *entity.SubscriptionFinancialRecord) error {
	m := r.mapper.FinancialRecordToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.FinancialRecordToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateFinancialRecord(ctx context.Context, record *entity.SubscriptionFinancialRecord) error {
	m := r.mapper.FinancialRecordToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.FinancialRecordToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOneFinancialRecord(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionFinancialRecord, error) {
	var m model.SubscriptionFinancialRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FinancialRecordToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAllFinancialRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionFinancialRecord, error) {
	var models []*model.SubscriptionFinancialRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SubscriptionFinancialRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FinancialRecordToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CountActiveSubscriptions(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClientSubscription{}).
		Where("status = ?", string(entity.SubscriptionStatusActive)).
		Count(&count).Error
	return int(count), err
}

func (r *SubscriptionRepositoryImpl) GetGrossRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.SubscriptionFinancialRecord{}).
		Where("status = ?", string(entity.FinancialRecordStatusPaid)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
