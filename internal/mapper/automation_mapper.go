package mapper

import (
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
)

type AutomationMapper struct{}

func NewAutomationMapper() *AutomationMapper {
	return &AutomationMapper{}
}

func (m *AutomationMapper) RuleToEntity(r *model.AutomationRule) *entity.AutomationRule {
	if r == nil {
		return nil
	}
	return &entity.AutomationRule{
		Id:              r.Id,
		BarbershopId:    r.BarbershopId,
		Name:            r.Name,
		Type:            entity.AutomationRuleType(r.Type),
		MessageTemplate: r.MessageTemplate,
		SendWhatsApp:    r.SendWhatsApp,
		NotifyStaff:     r.NotifyStaff,
		FollowUpDays:    r.FollowUpDays,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *AutomationMapper) RuleToModel(r *entity.AutomationRule) *model.AutomationRule {
	if r == nil {
		return nil
	}
	return &model.AutomationRule{
		Id:              r.Id,
		BarbershopId:    r.BarbershopId,
		Name:            r.Name,
		Type:            string(r.Type),
		MessageTemplate: r.MessageTemplate,
		SendWhatsApp:    r.SendWhatsApp,
		NotifyStaff:     r.NotifyStaff,
		FollowUpDays:    r.FollowUpDays,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *AutomationMapper) ExecutionToEntity(e *model.AutomationExecution) *entity.AutomationExecution {
	if e == nil {
		return nil
	}
	return &entity.AutomationExecution{
		Id:            e.Id,
		RuleId:        e.RuleId,
		BarbershopId:  e.BarbershopId,
		ClientId:      e.ClientId,
		AppointmentId: e.AppointmentId,
		Status:        entity.AutomationExecutionStatus(e.Status),
		Message:       e.Message,
		ErrorMessage:  e.ErrorMessage,
		ExecutedAt:    e.ExecutedAt,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *AutomationMapper) ExecutionToModel(e *entity.AutomationExecution) *model.AutomationExecution {
	if e == nil {
		return nil
	}
	return &model.AutomationExecution{
		Id:            e.Id,
		RuleId:        e.RuleId,
		BarbershopId:  e.BarbershopId,
		ClientId:      e.ClientId,
		AppointmentId: e.AppointmentId,
		Status:        string(e.Status),
		Message:       e.Message,
		ErrorMessage:  e.ErrorMessage,
		ExecutedAt:    e.ExecutedAt,
		CreatedAt:     e.CreatedAt,
	}
}
