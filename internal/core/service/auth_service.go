package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

// AuthService implements identity exchange, session resolution and logout.
type AuthService struct {
	users    ports.UserRepository
	sessions *SessionStore
	identity ports.IdentityProvider
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *SessionStore, identity ports.IdentityProvider, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, identity: identity, log: log}
}

// Exchange validates sessionID with the identity provider, creates the account
// on first login and issues an application session.
func (s *AuthService) Exchange(ctx context.Context, sessionID string) (*ports.LoginResult, error) {
	if sessionID == "" {
		return nil, domain.ErrMissingSessionID
	}

	ident, err := s.identity.Exchange(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("exchange session: %w", err)
	}
	if ident.Email == "" {
		return nil, domain.ErrInvalidSession
	}

	now := time.Now().UTC()
	user, err := s.users.FindByEmail(ctx, ident.Email)
	switch {
	case err == nil:
		if err := s.users.RefreshProfile(ctx, user.UserID, ident.Name, ident.Picture, now); err != nil {
			return nil, fmt.Errorf("exchange session: %w", err)
		}
		user.Name = ident.Name
		user.Picture = ident.Picture
		user.UpdatedAt = now
	case errors.Is(err, domain.ErrUserNotFound):
		user = &domain.User{
			UserID:    domain.NewUserID(),
			Email:     ident.Email,
			Name:      ident.Name,
			Picture:   ident.Picture,
			Role:      domain.RoleCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("exchange session: %w", err)
		}
		s.log.Info().Str("user_id", user.UserID).Msg("user registered")
	default:
		return nil, fmt.Errorf("exchange session: %w", err)
	}

	session, err := s.sessions.Create(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.UserID).Msg("session created")
	return &ports.LoginResult{User: user, Token: session.Token, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate returns the user owning token or domain.ErrInvalidSession.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
