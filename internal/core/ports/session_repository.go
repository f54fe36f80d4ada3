package ports

import (
	"context"
	"time"

	"github.com/labcel/storefront/internal/core/domain"
)

// SessionRepository persists session tokens.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	// FindByToken returns domain.ErrInvalidSession when the token is unknown.
	// Expiry is not checked here.
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	// Delete is idempotent: deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// IdentityProvider exchanges an external session id for the user's identity.
type IdentityProvider interface {
	Exchange(ctx context.Context, sessionID string) (*domain.ExternalIdentity, error)
}
