package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// UpdateUser applies upd to userID on behalf of actor. Actors cannot
	// change their own role, by either method.
	UpdateUser(ctx context.Context, actor *domain.User, userID string, upd domain.UserUpdate) (*domain.User, error)
	// ChangeRole sets the role of userID on behalf of actor.
	ChangeRole(ctx context.Context, actor *domain.User, userID, role string) error
}
