package mapper

import (
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
)

type WhatsAppMapper struct{}

func NewWhatsAppMapper() *WhatsAppMapper {
	return &WhatsAppMapper{}
}

func (m *WhatsAppMapper) ToEntity(i *model.WhatsAppInstance) *entity.WhatsAppInstance {
	if i == nil {
		return nil
	}
	return &entity.WhatsAppInstance{
		Id:           i.Id,
		BarbershopId: i.BarbershopId,
		InstanceName: i.InstanceName,
		Status:       entity.WhatsAppStatus(i.Status),
		PhoneNumber:  i.PhoneNumber,
		QrCode:       i.QrCode,
		LastSyncAt:   i.LastSyncAt,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (m *WhatsAppMapper) ToModel(i *entity.WhatsAppInstance) *model.WhatsAppInstance {
	if i == nil {
		return nil
	}
	return &model.WhatsAppInstance{
		Id:           i.Id,
		BarbershopId: i.BarbershopId,
		InstanceName: i.InstanceName,
		Status:       string(i.Status),
		PhoneNumber:  i.PhoneNumber,
		QrCode:       i.QrCode,
		LastSyncAt:   i.LastSyncAt,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
