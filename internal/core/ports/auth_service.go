package ports

import (
	"context"
	"time"

	"github.com/labcel/storefront/internal/core/domain"
)

// LoginResult is returned after a successful identity exchange.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	// Exchange trades an identity-provider session id for an application session.
	Exchange(ctx context.Context, sessionID string) (*LoginResult, error)
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}
