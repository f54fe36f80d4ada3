package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

const tokenBytes = 32

// SessionCache abstracts the read-through token cache (Redis).
// Get returns an empty user id on a miss.
type SessionCache interface {
	Get(ctx context.Context, token string) (string, error)
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

// SessionStore issues, resolves and revokes opaque session tokens.
// Expired sessions are rejected at read time; SweepExpired purges them.
type SessionStore struct {
	repo     ports.SessionRepository
	cache    SessionCache
	ttl      time.Duration
	cacheTTL time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewSessionStore returns a store issuing sessions valid for ttl. cache may be nil.
func NewSessionStore(repo ports.SessionRepository, cache SessionCache, ttl, cacheTTL time.Duration, log zerolog.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = domain.SessionTTL
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &SessionStore{
		repo:     repo,
		cache:    cache,
		ttl:      ttl,
		cacheTTL: cacheTTL,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// Create persists a new session for userID.
func (s *SessionStore) Create(ctx context.Context, userID string) (*domain.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	now := s.now()
	session := &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Resolve returns the user id bound to token, or domain.ErrInvalidSession when
// the token is empty, unknown or expired.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrInvalidSession
	}

	if s.cache != nil {
		userID, err := s.cache.Get(ctx, token)
		if err != nil {
			s.log.Warn().Err(err).Msg("session cache lookup failed, falling back to store")
		} else if userID != "" {
			return userID, nil
		}
	}

	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return "", err
	}
	now := s.now()
	if session.Expired(now) {
		return "", domain.ErrInvalidSession
	}

	if s.cache != nil {
		// Never let the cache outlive the session itself.
		ttl := session.ExpiresAt.UTC().Sub(now)
		if ttl > s.cacheTTL {
			ttl = s.cacheTTL
		}
		if err := s.cache.Set(ctx, token, session.UserID, ttl); err != nil {
			s.log.Warn().Err(err).Msg("session cache fill failed")
		}
	}
	return session.UserID, nil
}

// Revoke deletes the session. Revoking an unknown token is not an error.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("session cache evict failed")
		}
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// SweepExpired removes sessions whose expiry has passed.
func (s *SessionStore) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	if n > 0 {
		s.log.Info().Int64("count", n).Msg("expired sessions removed")
	}
	return n, nil
}

// RunSweeper calls SweepExpired every interval until ctx is cancelled.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepExpired(ctx); err != nil {
				s.log.Error().Err(err).Msg("session sweep failed")
			}
		}
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
