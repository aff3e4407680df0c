package unitofwork

import (
	"context"

	"barberflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BarbershopRepository() contract.BarbershopRepository
	ClientRepository() contract.ClientRepository
	ProviderRepository() contract.ProviderRepository
	ServiceRepository() contract.ServiceRepository

	AppointmentRepository() contract.AppointmentRepository
	CommandRepository() contract.CommandRepository
	SubscriptionRepository() contract.SubscriptionRepository
	AutomationRepository() contract.AutomationRepository
	WhatsAppRepository() contract.WhatsAppRepository
}
