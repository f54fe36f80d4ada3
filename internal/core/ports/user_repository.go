package ports

import (
	"context"
	"time"

	"github.com/labcel/storefront/internal/core/domain"
)

// UserRepository defines persistence operations for storefront accounts.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// RefreshProfile overwrites the provider-owned fields (name, picture).
	RefreshProfile(ctx context.Context, userID, name, picture string, now time.Time) error
	// Update applies a partial update and returns the stored user.
	Update(ctx context.Context, userID string, upd domain.UserUpdate, now time.Time) (*domain.User, error)
	List(ctx context.Context, limit int64) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string, limit int64) ([]*domain.User, error)
}
