package ports

import (
	"context"
	"time"

	"github.com/labcel/storefront/internal/core/domain"
)

// ListOrdersFilter carries query parameters for listing orders.
type ListOrdersFilter struct {
	UserID string // empty = no filter (admin); non-empty = owner scope
	Status string // optional
	Limit  int64
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	// FindTracking loads only the public projection of an order.
	FindTracking(ctx context.Context, orderID string) (*domain.OrderTracking, error)
	// List returns orders newest first.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)

	// AppendStatus atomically sets the current status and pushes the history entry.
	AppendStatus(ctx context.Context, orderID string, entry domain.StatusHistoryEntry) error
	// MarkDesignProposalSent flips design_proposal_sent to true and stores the image.
	MarkDesignProposalSent(ctx context.Context, orderID, imageRef string, now time.Time) error
	// MarkDesignApproved flips design_approved to true.
	MarkDesignApproved(ctx context.Context, orderID string, now time.Time) error
}

// StatsRepository runs the read-only aggregates behind the admin dashboard.
type StatsRepository interface {
	CountOrders(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context) (map[string]int64, error)
	CountOrdersSince(ctx context.Context, since time.Time) (int64, error)
	// RevenueExcluding sums order totals whose status is not the given one.
	RevenueExcluding(ctx context.Context, status domain.OrderStatus) (float64, error)
	CountUsers(ctx context.Context) (int64, error)
}
