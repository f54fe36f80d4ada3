package domain

import "time"

// SessionTTL is the fixed lifetime of a session from issuance.
const SessionTTL = 7 * 24 * time.Hour

// Session maps an opaque token to a user for a bounded window.
type Session struct {
	Token     string    `bson:"session_token"`
	UserID    string    `bson:"user_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// Expired compares in UTC so stored and local clocks agree.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.UTC().After(now.UTC())
}

// ExternalIdentity is what the identity provider returns for a session id.
type ExternalIdentity struct {
	Email   string
	Name    string
	Picture string
}
