package mapper

import (
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	return &entity.Appointment{
		Id:           a.Id,
		BarbershopId: a.BarbershopId,
		ClientId:     a.ClientId,
		ProviderId:   a.ProviderId,
		ServiceId:    a.ServiceId,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Status:       entity.AppointmentStatus(a.Status),
		Notes:        a.Notes,
		CancelledAt:  a.CancelledAt,
		CompletedAt:  a.CompletedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:           a.Id,
		BarbershopId: a.BarbershopId,
		ClientId:     a.ClientId,
		ProviderId:   a.ProviderId,
		ServiceId:    a.ServiceId,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Status:       string(a.Status),
		Notes:        a.Notes,
		CancelledAt:  a.CancelledAt,
		CompletedAt:  a.CompletedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
