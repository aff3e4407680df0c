package repository

import (
	"context"

	"barberflow-be/internal/entity"
	"barberflow-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository backs the staff-inbox worker. It lives outside the
// unit of work because the worker owns its own connection lifecycle.
type NotificationRepository interface {
	GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error)
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	GetUsersByRole(ctx context.Context, role string) ([]*entity.User, error)
	GetStaffByBarbershop(ctx context.Context, barbershopID uuid.UUID) ([]*entity.User, error)
}
