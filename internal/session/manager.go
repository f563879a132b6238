package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/digest"
	"github.com/exebots/secstore/internal/logging"
	"github.com/exebots/secstore/internal/randx"
)

const tokenSize = 32

// EventSink receives session lifecycle events. May be nil.
type EventSink interface {
	Record(ctx context.Context, eventType string, data map[string]any)
}

// SecureStore is the slice of the storage facade the manager needs.
type SecureStore interface {
	Save(ctx context.Context, key string, v any) error
	Load(ctx context.Context, key string, v any) error
	Remove(ctx context.Context, key string) error
}

// Manager owns the single persisted session. The anti-forgery token is
// process-scoped: it lives only in the Manager, never on the substrate.
type Manager struct {
	storage SecureStore
	events  EventSink
	log     logging.Logger
	now     func() time.Time

	csrfToken    string
	csrfIssuedAt time.Time
}

// NewManager builds a Manager. events may be nil.
func NewManager(storage SecureStore, events EventSink, log logging.Logger) *Manager {
	return &Manager{
		storage: storage,
		events:  events,
		log:     log,
		now:     time.Now,
	}
}

// Create starts a fresh session for email under the given preset, replacing
// any existing one, and returns the session together with the raw bearer
// token. The token is not recoverable later: only its digest is persisted.
func (m *Manager) Create(ctx context.Context, email string, preset Preset) (*Session, string, error) {
	token, err := randx.Token(tokenSize)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}
	csrf, err := randx.Token(tokenSize)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate anti-forgery token: %w", err)
	}

	now := m.now()
	sess := Session{
		ID:        uuid.New(),
		Email:     email,
		TokenHash: digest.Sum256Hex(token),
		IssuedAt:  now,
		ExpiresAt: now.Add(preset.TTL),
		TTL:       preset.TTL,
		Sliding:   preset.Sliding,
	}

	if err := m.storage.Save(ctx, common.KeySession, &sess); err != nil {
		return nil, "", err
	}

	m.csrfToken = csrf
	m.csrfIssuedAt = now

	m.log.Info(ctx, "session created", "email", email, "expires_at", sess.ExpiresAt)
	m.record(ctx, "session_created", map[string]any{"email": email})
	return &sess, token, nil
}

// Current returns the session matching token. Expiry is enforced lazily: an
// expired record is destroyed on first access and reported as
// common.ErrorSessionExpired. A sliding session has its deadline pushed out
// by its TTL on every successful access.
func (m *Manager) Current(ctx context.Context, token string) (*Session, error) {
	sess, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(sess.TokenHash), []byte(digest.Sum256Hex(token))) != 1 {
		return nil, common.ErrInvalidToken
	}

	now := m.now()
	if sess.Expired(now) {
		m.expire(ctx, sess)
		return nil, common.ErrorSessionExpired
	}

	if sess.Sliding {
		sess.ExpiresAt = now.Add(sess.TTL)
		if err := m.storage.Save(ctx, common.KeySession, sess); err != nil {
			m.log.Warn(ctx, "failed to renew session deadline", "error", err)
		}
	}

	return sess, nil
}

// Resume re-adopts the session persisted by a previous run. The raw bearer
// token dies with the process that created it, so Resume mints a fresh one
// and rewrites the stored digest; the old token, if it leaked, is dead from
// this point on. Expiry is enforced the same way Current enforces it.
//
// Fails with common.ErrorNotFound when nothing is stored and
// common.ErrorSessionExpired when the stored session is past its deadline
// (destroying the record).
func (m *Manager) Resume(ctx context.Context) (*Session, string, error) {
	sess, err := m.load(ctx)
	if err != nil {
		return nil, "", err
	}

	now := m.now()
	if sess.Expired(now) {
		m.expire(ctx, sess)
		return nil, "", common.ErrorSessionExpired
	}

	token, err := randx.Token(tokenSize)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}
	sess.TokenHash = digest.Sum256Hex(token)
	if sess.Sliding {
		sess.ExpiresAt = now.Add(sess.TTL)
	}
	if err := m.storage.Save(ctx, common.KeySession, sess); err != nil {
		return nil, "", err
	}

	m.log.Info(ctx, "session resumed", "email", sess.Email)
	m.record(ctx, "session_resumed", map[string]any{"email": sess.Email})
	return sess, token, nil
}

// Valid reports whether token identifies a live session.
func (m *Manager) Valid(ctx context.Context, token string) bool {
	_, err := m.Current(ctx, token)
	return err == nil
}

// Destroy removes the persisted session. Destroying an absent session is
// not an error.
func (m *Manager) Destroy(ctx context.Context) error {
	sess, err := m.load(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := m.storage.Remove(ctx, common.KeySession); err != nil {
		return err
	}
	m.csrfToken = ""
	m.csrfIssuedAt = time.Time{}

	m.log.Info(ctx, "session destroyed", "email", sess.Email)
	m.record(ctx, "session_destroyed", map[string]any{"email": sess.Email})
	return nil
}

// expire destroys a session found past its deadline during a read.
func (m *Manager) expire(ctx context.Context, sess *Session) {
	m.log.Info(ctx, "session expired", "email", sess.Email)
	m.record(ctx, "session_expired", map[string]any{"email": sess.Email})
	if err := m.storage.Remove(ctx, common.KeySession); err != nil {
		m.log.Warn(ctx, "failed to remove expired session", "error", err)
	}
}

func (m *Manager) load(ctx context.Context) (*Session, error) {
	var sess Session
	if err := m.storage.Load(ctx, common.KeySession, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (m *Manager) record(ctx context.Context, eventType string, data map[string]any) {
	if m.events != nil {
		m.events.Record(ctx, eventType, data)
	}
}
