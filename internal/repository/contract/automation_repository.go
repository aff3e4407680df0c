package contract

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AutomationRepository interface {
	CreateRule(ctx context.Context, rule *entity.AutomationRule) error
	UpdateRule(ctx context.Context, rule *entity.AutomationRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
	FindOneRule(ctx context.Context, specs ...specification.Specification) (*entity.AutomationRule, error)
	FindAllRules(ctx context.Context, specs ...specification.Specification) ([]*entity.AutomationRule, error)

	CreateExecution(ctx context.Context, execution *entity.AutomationExecution) error
	UpdateExecution(ctx context.Context, execution *entity.AutomationExecution) error
	FindAllExecutions(ctx context.Context, specs ...specification.Specification) ([]*entity.AutomationExecution, error)
	// HasExecutionToday reports whether the rule already dispatched to the
	// client today, so daily sweeps stay idempotent per candidate.
	HasExecutionToday(ctx context.Context, ruleId, clientId uuid.UUID) (bool, error)
}
