package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

// NotificationRepository is an append-only log of delivery attempts.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListRecent returns the newest notifications first.
	ListRecent(ctx context.Context, limit int64) ([]*domain.Notification, error)
}

// Transport delivers a single message on one channel. Implementations must not
// mutate the notification.
type Transport interface {
	Send(ctx context.Context, n domain.Notification) error
}
