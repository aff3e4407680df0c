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

type AppointmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppointmentMapper
}

func NewAppointmentRepository(db *gorm.DB) contract.AppointmentRepository {
	return &AppointmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppointmentMapper(),
	}
}

func (r *AppointmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*appointment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AppointmentRepositoryImpl) Update(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*appointment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error
}

func (r *AppointmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	var m model.Appointment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AppointmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	var models []*model.Appointment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Appointment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
