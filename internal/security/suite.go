// Package security assembles the full stack behind one context object: a
// substrate-backed encrypted store, the credential and session services,
// the rate limiter and the audit log, all sharing one derived master key.
package security

import (
	"context"
	"errors"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/device"
	"github.com/exebots/secstore/internal/digest"
	"github.com/exebots/secstore/internal/events"
	"github.com/exebots/secstore/internal/logging"
	"github.com/exebots/secstore/internal/randx"
	"github.com/exebots/secstore/internal/ratelimit"
	"github.com/exebots/secstore/internal/sanitize"
	"github.com/exebots/secstore/internal/session"
	"github.com/exebots/secstore/internal/storage"
	"github.com/exebots/secstore/internal/users"
)

var ErrStorageRequired = errors.New("storage adapter is required")

// Config configures the suite. Storage is required; every other field has
// a working default.
type Config struct {
	Storage storage.KV

	Log              logging.Logger
	PasswordHasher   digest.PasswordHasher
	PasswordPolicy   sanitize.PasswordPolicy
	SessionPreset    session.Preset
	KeyIterations    int
	EventLogCapacity int
}

// Suite is the assembled security context.
type Suite struct {
	Storage  *storage.Secure
	Users    *users.Store
	Sessions *session.Manager
	Limiter  *ratelimit.Limiter
	Events   *events.Log

	Preset session.Preset

	kv  storage.KV
	key []byte
	log logging.Logger
}

// New derives the master key from the device fingerprint and the
// per-install salt, then wires the components together. The first call on
// a fresh substrate mints the salt; later calls reuse it, so the derived
// key is stable across runs on the same machine.
func New(ctx context.Context, config Config) (*Suite, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	log := config.Log
	if log == nil {
		log = logging.NewNopLogger()
	}

	hasher := config.PasswordHasher
	if hasher == nil {
		hasher = &digest.PBKDF2Hasher{}
	}

	preset := config.SessionPreset
	if preset.TTL == 0 {
		preset = session.SessionShort
	}

	iterations := config.KeyIterations
	if iterations <= 0 {
		iterations = digest.DefaultIterations
	}

	salt, err := LoadOrCreateInstallSalt(ctx, config.Storage)
	if err != nil {
		return nil, err
	}
	key := DeriveMasterKey(device.Fingerprint(), salt, iterations)

	secure := storage.NewSecure(config.Storage, key, log)
	auditLog := events.NewLog(ctx, config.EventLogCapacity, secure, log)
	secure.WithEvents(auditLog)

	limiter := ratelimit.New(log, auditLog)

	return &Suite{
		Storage:  secure,
		Users:    users.New(secure, hasher, limiter, auditLog, log, config.PasswordPolicy),
		Sessions: session.NewManager(secure, auditLog, log),
		Limiter:  limiter,
		Events:   auditLog,
		Preset:   preset,
		kv:       config.Storage,
		key:      key,
		log:      log,
	}, nil
}

// Login verifies credentials and opens a session under the configured
// preset, returning the raw bearer token.
func (s *Suite) Login(ctx context.Context, email, password string) (*session.Session, string, error) {
	user, err := s.Users.ValidateLogin(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	return s.Sessions.Create(ctx, user.Email, s.Preset)
}

// Resume re-adopts a session persisted by a previous run, if one is still
// live, returning it with a fresh bearer token.
func (s *Suite) Resume(ctx context.Context) (*session.Session, string, error) {
	return s.Sessions.Resume(ctx)
}

// Logout destroys the current session, if any.
func (s *Suite) Logout(ctx context.Context) error {
	return s.Sessions.Destroy(ctx)
}

// Wipe destroys all persisted state: user records, the session, the audit
// log and the install salt. The in-memory master key is zeroed, so the
// suite is unusable afterwards.
func (s *Suite) Wipe(ctx context.Context) error {
	keys := []string{common.KeyUsers, common.KeySession, common.KeyEvents}
	for _, k := range keys {
		if err := s.Storage.Remove(ctx, k); err != nil {
			return err
		}
	}
	if err := s.kv.Delete(ctx, common.KeyInstallSalt); err != nil {
		return err
	}
	randx.Wipe(s.key)
	s.log.Info(ctx, "security state wiped")
	return nil
}
