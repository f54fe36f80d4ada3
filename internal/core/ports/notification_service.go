package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

// NotificationTask is a unit of fire-and-forget work published by the order
// workflow. When Admins is true the message is broadcast to every admin and
// the recipient fields are ignored.
type NotificationTask struct {
	OrderID  string
	Type     string
	Message  string
	Email    string
	WhatsApp string
	Admins   bool
}

// NotificationPublisher schedules a task without waiting for it to run.
type NotificationPublisher interface {
	Publish(task NotificationTask)
}

// NotificationHandler executes a published task.
type NotificationHandler interface {
	Handle(ctx context.Context, task NotificationTask) error
}

// NotificationService records and delivers per-channel messages.
type NotificationService interface {
	NotificationHandler
	Dispatch(ctx context.Context, orderID, notificationType, message, email, whatsapp string) ([]*domain.Notification, error)
	NotifyAdmins(ctx context.Context, orderID, notificationType, message string) error
	ListRecent(ctx context.Context, limit int64) ([]*domain.Notification, error)
}
