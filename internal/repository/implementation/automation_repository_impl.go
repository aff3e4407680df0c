package implementation

import (
	"context"
	"errors"
	"time"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/mapper"
	"barberflow-be/internal/model"
	"barberflow-be/internal/repository/contract"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AutomationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AutomationMapper
}

func NewAutomationRepository(db *gorm.DB) contract.AutomationRepository {
	return &AutomationRepositoryImpl{
		db:     db,
		mapper: mapper.NewAutomationMapper(),
	}
}

func (r *AutomationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AutomationRepositoryImpl) CreateRule(ctx context.Context, rule *entity.AutomationRule) error {
	m := r.mapper.RuleToModel(rule)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rule = *r.mapper.RuleToEntity(m)
	return nil
}

func (r *AutomationRepositoryImpl) UpdateRule(ctx context.Context, rule *entity.AutomationRule) error {
	m := r.mapper.RuleToModel(rule)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*rule = *r.mapper.RuleToEntity(m)
	return nil
}

func (r *AutomationRepositoryImpl) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AutomationRule{}, id).Error
}

func (r *AutomationRepositoryImpl) FindOneRule(ctx context.Context, specs ...specification.Specification) (*entity.AutomationRule, error) {
	var m model.AutomationRule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RuleToEntity(&m), nil
}

func (r *AutomationRepositoryImpl) FindAllRules(ctx context.Context, specs ...specification.Specification) ([]*entity.AutomationRule, error) {
	var models []*model.AutomationRule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AutomationRule, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RuleToEntity(m)
	}
	return entities, nil
}

func (r *AutomationRepositoryImpl) CreateExecution(ctx context.Context, execution *entity.AutomationExecution) error {
	m := r.mapper.ExecutionToModel(execution)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*execution = *r.mapper.ExecutionToEntity(m)
	return nil
}

func (r *AutomationRepositoryImpl) UpdateExecution(ctx context.Context, execution *entity.AutomationExecution) error {
	m := r.mapper.ExecutionToModel(execution)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*execution = *r.mapper.ExecutionToEntity(m)
	return nil
}

func (r *AutomationRepositoryImpl) FindAllExecutions(ctx context.Context, specs ...specification.Specification) ([]*entity.AutomationExecution, error) {
	var models []*model.AutomationExecution
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AutomationExecution, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExecutionToEntity(m)
	}
	return entities, nil
}

func (r *AutomationRepositoryImpl) HasExecutionToday(ctx context.Context, ruleId, clientId uuid.UUID) (bool, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AutomationExecution{}).
		Where("rule_id = ? AND client_id = ? AND created_at >= ?", ruleId, clientId, dayStart).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
