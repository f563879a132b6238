// Package session manages the single authenticated session: an opaque
// bearer token, lazily-enforced expiry with optional sliding renewal, and
// a rotating anti-forgery token tied to the session.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Preset configures a session's lifetime.
type Preset struct {
	TTL     time.Duration
	Sliding bool
}

// Presets mirroring the storefront's two login modes.
var (
	// SessionShort renews its deadline on every access.
	SessionShort = Preset{TTL: 30 * time.Minute, Sliding: true}
	// SessionRemember has a fixed deadline set at creation.
	SessionRemember = Preset{TTL: 24 * time.Hour, Sliding: false}
)

// Session is the persisted record. Only the token's digest is stored; the
// raw token is handed to the caller once at creation.
type Session struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	TokenHash string        `json:"token_hash"`
	IssuedAt  time.Time     `json:"issued_at"`
	ExpiresAt time.Time     `json:"expires_at"`
	TTL       time.Duration `json:"ttl"`
	Sliding   bool          `json:"sliding"`
}

// Expired reports whether the session deadline has passed. The deadline
// itself is exclusive: a session is invalid at exactly ExpiresAt.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
