package mapper

import (
	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"
)

type BarbershopMapper struct{}

func NewBarbershopMapper() *BarbershopMapper {
	return &BarbershopMapper{}
}

func (m *BarbershopMapper) ToEntity(b *model.Barbershop) *entity.Barbershop {
	if b == nil {
		return nil
	}
	return &entity.Barbershop{
		Id:        b.Id,
		Name:      b.Name,
		Slug:      b.Slug,
		Phone:     b.Phone,
		Email:     b.Email,
		Timezone:  b.Timezone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *BarbershopMapper) ToModel(b *entity.Barbershop) *model.Barbershop {
	if b == nil {
		return nil
	}
	return &model.Barbershop{
		Id:        b.Id,
		Name:      b.Name,
		Slug:      b.Slug,
		Phone:     b.Phone,
		Email:     b.Email,
		Timezone:  b.Timezone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) ToEntity(c *model.Client) *entity.Client {
	if c == nil {
		return nil
	}
	return &entity.Client{
		Id:           c.Id,
		BarbershopId: c.BarbershopId,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Notes:        c.Notes,
		LastVisitAt:  c.LastVisitAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ClientMapper) ToModel(c *entity.Client) *model.Client {
	if c == nil {
		return nil
	}
	return &model.Client{
		Id:           c.Id,
		BarbershopId: c.BarbershopId,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Notes:        c.Notes,
		LastVisitAt:  c.LastVisitAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type ProviderMapper struct{}

func NewProviderMapper() *ProviderMapper {
	return &ProviderMapper{}
}

func (m *ProviderMapper) ToEntity(p *model.Provider) *entity.Provider {
	if p == nil {
		return nil
	}
	return &entity.Provider{
		Id:                   p.Id,
		BarbershopId:         p.BarbershopId,
		UserId:               p.UserId,
		Name:                 p.Name,
		Phone:                p.Phone,
		CommissionPercentage: p.CommissionPercentage,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (m *ProviderMapper) ToModel(p *entity.Provider) *model.Provider {
	if p == nil {
		return nil
	}
	return &model.Provider{
		Id:                   p.Id,
		BarbershopId:         p.BarbershopId,
		UserId:               p.UserId,
		Name:                 p.Name,
		Phone:                p.Phone,
		CommissionPercentage: p.CommissionPercentage,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

type ServiceMapper struct{}

func NewServiceMapper() *ServiceMapper {
	return &ServiceMapper{}
}

func (m *ServiceMapper) ToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:              s.Id,
		BarbershopId:    s.BarbershopId,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *ServiceMapper) ToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id:              s.Id,
		BarbershopId:    s.BarbershopId,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
