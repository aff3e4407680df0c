package mapper

import (
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
)

type CommandMapper struct{}

func NewCommandMapper() *CommandMapper {
	return &CommandMapper{}
}

func (m *CommandMapper) ToEntity(c *model.Command) *entity.Command {
	if c == nil {
		return nil
	}
	items := make([]entity.CommandItem, 0, len(c.Items))
	for _, it := range c.Items {
		if mapped := m.ItemToEntity(it); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &entity.Command{
		Id:            c.Id,
		BarbershopId:  c.BarbershopId,
		ClientId:      c.ClientId,
		ProviderId:    c.ProviderId,
		Status:        entity.CommandStatus(c.Status),
		TotalAmount:   c.TotalAmount,
		PaymentMethod: c.PaymentMethod,
		ClosedAt:      c.ClosedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Items:         items,
	}
}

func (m *CommandMapper) ToModel(c *entity.Command) *model.Command {
	if c == nil {
		return nil
	}
	items := make([]*model.CommandItem, len(c.Items))
	for i := range c.Items {
		items[i] = m.ItemToModel(&c.Items[i])
	}
	return &model.Command{
		Id:            c.Id,
		BarbershopId:  c.BarbershopId,
		ClientId:      c.ClientId,
		ProviderId:    c.ProviderId,
		Status:        string(c.Status),
		TotalAmount:   c.TotalAmount,
		PaymentMethod: c.PaymentMethod,
		ClosedAt:      c.ClosedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Items:         items,
	}
}

func (m *CommandMapper) ItemToEntity(i *model.CommandItem) *entity.CommandItem {
	if i == nil {
		return nil
	}
	return &entity.CommandItem{
		Id:               i.Id,
		CommandId:        i.CommandId,
		ServiceId:        i.ServiceId,
		ProviderId:       i.ProviderId,
		Description:      i.Description,
		Quantity:         i.Quantity,
		UnitPrice:        i.UnitPrice,
		TotalPrice:       i.TotalPrice,
		CommissionRate:   i.CommissionRate,
		CommissionAmount: i.CommissionAmount,
		SubscriptionId:   i.SubscriptionId,
		CreatedAt:        i.CreatedAt,
	}
}

func (m *CommandMapper) ItemToModel(i *entity.CommandItem) *model.CommandItem {
	if i == nil {
		return nil
	}
	return &model.CommandItem{
		Id:               i.Id,
		CommandId:        i.CommandId,
		ServiceId:        i.ServiceId,
		ProviderId:       i.ProviderId,
		Description:      i.Description,
		Quantity:         i.Quantity,
		UnitPrice:        i.UnitPrice,
		TotalPrice:       i.TotalPrice,
		CommissionRate:   i.CommissionRate,
		CommissionAmount: i.CommissionAmount,
		SubscriptionId:   i.SubscriptionId,
		CreatedAt:        i.CreatedAt,
	}
}
