package mapper

import (
	"encoding/json"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

// NormalizeServiceIds parses the enabled_service_ids column. Legacy rows hold
// either a JSON array of UUID strings or that array double-encoded as a JSON
// string; both shapes normalize to []uuid.UUID here so nothing downstream
// re-parses. Unparseable ids are skipped.
func NormalizeServiceIds(raw []byte) []uuid.UUID {
	if len(raw) == 0 {
		return nil
	}

	var strs []string
	if err := json.Unmarshal(raw, &strs); err != nil {
		// Double-encoded: unwrap the string, then parse the array.
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}
		if err := json.Unmarshal([]byte(inner), &strs); err != nil {
			return nil
		}
	}

	ids := make([]uuid.UUID, 0, len(strs))
	for _, s := range strs {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func serviceIdsToJSON(ids []uuid.UUID) datatypes.JSON {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	raw, _ := json.Marshal(strs)
	return datatypes.JSON(raw)
}

func (m *SubscriptionMapper) PlanToEntity(p *model.ProviderSubscriptionPlan) *entity.ProviderSubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.ProviderSubscriptionPlan{
		Id:                    p.Id,
		BarbershopId:          p.BarbershopId,
		ProviderId:            p.ProviderId,
		Name:                  p.Name,
		Description:           p.Description,
		MonthlyPrice:          p.MonthlyPrice,
		IncludedServicesCount: p.IncludedServicesCount,
		CommissionPercentage:  p.CommissionPercentage,
		EnabledServiceIds:     NormalizeServiceIds(p.EnabledServiceIds),
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.ProviderSubscriptionPlan) *model.ProviderSubscriptionPlan {
	if p == nil {
		return nil
	}
	return &model.ProviderSubscriptionPlan{
		Id:                    p.Id,
		BarbershopId:          p.BarbershopId,
		ProviderId:            p.ProviderId,
		Name:                  p.Name,
		Description:           p.Description,
		MonthlyPrice:          p.MonthlyPrice,
		IncludedServicesCount: p.IncludedServicesCount,
		CommissionPercentage:  p.CommissionPercentage,
		EnabledServiceIds:     serviceIdsToJSON(p.EnabledServiceIds),
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToEntity(s *model.ClientSubscription) *entity.ClientSubscription {
	if s == nil {
		return nil
	}
	return &entity.ClientSubscription{
		Id:                s.Id,
		BarbershopId:      s.BarbershopId,
		ClientId:          s.ClientId,
		ProviderId:        s.ProviderId,
		PlanId:            s.PlanId,
		Status:            entity.SubscriptionStatus(s.Status),
		RemainingServices: s.RemainingServices,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		CancelledAt:       s.CancelledAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToModel(s *entity.ClientSubscription) *model.ClientSubscription {
	if s == nil {
		return nil
	}
	return &model.ClientSubscription{
		Id:                s.Id,
		BarbershopId:      s.BarbershopId,
		ClientId:          s.ClientId,
		ProviderId:        s.ProviderId,
		PlanId:            s.PlanId,
		Status:            string(s.Status),
		RemainingServices: s.RemainingServices,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		CancelledAt:       s.CancelledAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) UsageToEntity(u *model.SubscriptionUsage) *entity.SubscriptionUsage {
	if u == nil {
		return nil
	}
	return &entity.SubscriptionUsage{
		Id:             u.Id,
		SubscriptionId: u.SubscriptionId,
		ServiceId:      u.ServiceId,
		CommandId:      u.CommandId,
		UsedAt:         u.UsedAt,
	}
}

func (m *SubscriptionMapper) UsageToModel(u *entity.SubscriptionUsage) *model.SubscriptionUsage {
	if u == nil {
		return nil
	}
	return &model.SubscriptionUsage{
		Id:             u.Id,
		SubscriptionId: u.SubscriptionId,
		ServiceId:      u.ServiceId,
		CommandId:      u.CommandId,
		UsedAt:         u.UsedAt,
	}
}

func (m *SubscriptionMapper) FinancialRecordToEntity(r *model.SubscriptionFinancialRecord) *entity.SubscriptionFinancialRecord {
	if r == nil {
		return nil
	}
	return &entity.SubscriptionFinancialRecord{
		Id:               r.Id,
		SubscriptionId:   r.SubscriptionId,
		BarbershopId:     r.BarbershopId,
		Status:           entity.FinancialRecordStatus(r.Status),
		Amount:           r.Amount,
		CommissionAmount: r.CommissionAmount,
		NetAmount:        r.NetAmount,
		PeriodStart:      r.PeriodStart,
		PeriodEnd:        r.PeriodEnd,
		DueDate:          r.DueDate,
		PaidAt:           r.PaidAt,
		GatewayOrderId:   r.GatewayOrderId,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (m *SubscriptionMapper) FinancialRecordToModel(r *entity.SubscriptionFinancialRecord) *model.SubscriptionFinancialRecord {
	if r == nil {
		return nil
	}
	return &model.SubscriptionFinancialRecord{
		Id:               r.Id,
		SubscriptionId:   r.SubscriptionId,
		BarbershopId:     r.BarbershopId,
		Status:           string(r.Status),
		Amount:           r.Amount,
		CommissionAmount: r.CommissionAmount,
		NetAmount:        r.NetAmount,
		PeriodStart:      r.PeriodStart,
		PeriodEnd:        r.PeriodEnd,
		DueDate:          r.DueDate,
		PaidAt:           r.PaidAt,
		GatewayOrderId:   r.GatewayOrderId,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
