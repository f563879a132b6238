package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/exebots/secstore/internal/randx"
)

// csrfRotateAfter is the maximum age of an anti-forgery token before the
// next read mints a fresh one.
const csrfRotateAfter = 5 * time.Minute

// ForgeryToken returns the current anti-forgery token, rotating it lazily
// once it is older than five minutes. The bearer token must identify a
// live session. The anti-forgery token is never persisted, so a new
// process starts with a fresh one.
func (m *Manager) ForgeryToken(ctx context.Context, token string) (string, error) {
	sess, err := m.Current(ctx, token)
	if err != nil {
		return "", err
	}

	now := m.now()
	if m.csrfToken == "" || now.Sub(m.csrfIssuedAt) >= csrfRotateAfter {
		fresh, err := randx.Token(tokenSize)
		if err != nil {
			return "", fmt.Errorf("failed to rotate anti-forgery token: %w", err)
		}
		m.csrfToken = fresh
		m.csrfIssuedAt = now
		m.log.Debug(ctx, "anti-forgery token rotated", "email", sess.Email)
	}

	return m.csrfToken, nil
}

// ValidateForgeryToken reports whether candidate matches the current
// anti-forgery token. The comparison is constant-time.
func (m *Manager) ValidateForgeryToken(ctx context.Context, token, candidate string) (bool, error) {
	if _, err := m.Current(ctx, token); err != nil {
		return false, err
	}
	if m.csrfToken == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(m.csrfToken), []byte(candidate)) == 1, nil
}
