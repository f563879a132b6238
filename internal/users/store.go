// Package users implements the credential store: registration with
// uniqueness and policy checks, and login verification with rate gating.
// Records persist as one encrypted blob through the secure storage facade.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/digest"
	"github.com/exebots/secstore/internal/logging"
	"github.com/exebots/secstore/internal/ratelimit"
	"github.com/exebots/secstore/internal/sanitize"
)

// Actions gated by the rate limiter.
const (
	ActionLogin    = "login"
	ActionRegister = "register"
)

// EventSink receives audit events. May be nil.
type EventSink interface {
	Record(ctx context.Context, eventType string, data map[string]any)
}

// SecureStore is the slice of the storage facade the store needs.
type SecureStore interface {
	Save(ctx context.Context, key string, v any) error
	Load(ctx context.Context, key string, v any) error
}

// Store owns the set of user records. Not safe for concurrent writers: the
// load-mutate-save cycle assumes the single-writer model of the substrate.
type Store struct {
	storage SecureStore
	hasher  digest.PasswordHasher
	limiter *ratelimit.Limiter
	events  EventSink
	log     logging.Logger
	policy  sanitize.PasswordPolicy
	now     func() time.Time
}

// New builds a Store. limiter and events may be nil (no gating, no audit).
func New(storage SecureStore, hasher digest.PasswordHasher, limiter *ratelimit.Limiter,
	events EventSink, log logging.Logger, policy sanitize.PasswordPolicy) *Store {
	return &Store{
		storage: storage,
		hasher:  hasher,
		limiter: limiter,
		events:  events,
		log:     log,
		policy:  policy,
		now:     time.Now,
	}
}

// NormalizeEmail lowercases and trims an email for uniqueness comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the input, hashes the password and appends a new record.
//
// Fails with common.ErrorValidation when email shape, name length or the
// password policy check fails; with common.ErrorAlreadyExists when a
// normalized-equal email is present; with *ratelimit.RateLimitedError when
// the register gate blocks the attempt.
func (s *Store) Register(ctx context.Context, email, displayName, password string) (*User, error) {
	actor := NormalizeEmail(email)
	if s.limiter != nil {
		if _, err := s.limiter.RecordAttempt(ctx, actor, ActionRegister, ratelimit.PolicyRegister); err != nil {
			return nil, err
		}
	}

	email = NormalizeEmail(sanitize.Text(email))
	displayName = sanitize.Text(displayName)

	if !sanitize.Email(email) {
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if !sanitize.DisplayName(displayName) {
		return nil, fmt.Errorf("%w: display name must be 2-50 characters", common.ErrorValidation)
	}
	if !sanitize.Password(password, s.policy) {
		return nil, fmt.Errorf("%w: password does not meet policy", common.ErrorValidation)
	}

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.Email == email {
			return nil, fmt.Errorf("%w: email already registered", common.ErrorAlreadyExists)
		}
	}

	hashed, err := s.hasher.Hash(password, "")
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hashed.Hash,
		PasswordSalt: hashed.Salt,
		CreatedAt:    s.now(),
	}
	list = append(list, user)

	if err := s.storage.Save(ctx, common.KeyUsers, list); err != nil {
		return nil, err
	}

	if s.limiter != nil {
		s.limiter.ResetAttempts(actor, ActionRegister)
	}

	s.log.Info(ctx, "user registered", "email", email)
	s.record(ctx, "user_registered", map[string]any{"email": email})
	return &user, nil
}

// ValidateLogin checks the credentials and, on success, stamps LastLoginAt
// and clears the login rate gate.
//
// Fails with *ratelimit.RateLimitedError when gated, common.ErrorNotFound
// when no record matches, common.ErrorInvalidCredentials when the hash does
// not verify. Callers should show the latter two as the same generic message
// to avoid account enumeration.
func (s *Store) ValidateLogin(ctx context.Context, email, password string) (*User, error) {
	email = NormalizeEmail(email)

	if s.limiter != nil {
		if _, err := s.limiter.RecordAttempt(ctx, email, ActionLogin, ratelimit.PolicyLogin); err != nil {
			return nil, err
		}
	}

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, u := range list {
		if u.Email == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: no such user", common.ErrorNotFound)
	}

	user := list[idx]
	ok, err := s.hasher.Verify(password, user.PasswordHash, user.PasswordSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.log.Warn(ctx, "failed login", "email", email)
		s.record(ctx, "failed_login", map[string]any{"email": email})
		return nil, common.ErrorInvalidCredentials
	}

	now := s.now()
	user.LastLoginAt = &now
	list[idx] = user
	if err := s.storage.Save(ctx, common.KeyUsers, list); err != nil {
		// the login itself succeeded; losing the timestamp is tolerable
		s.log.Warn(ctx, "failed to persist last login", "email", email, "error", err)
	}

	if s.limiter != nil {
		s.limiter.ResetAttempts(email, ActionLogin)
	}

	s.log.Info(ctx, "successful login", "email", email)
	s.record(ctx, "successful_login", map[string]any{"email": email})
	return &user, nil
}

// Find returns the record with the given normalized email, or
// common.ErrorNotFound.
func (s *Store) Find(ctx context.Context, email string) (*User, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	for _, u := range list {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// Count reports the number of registered users.
func (s *Store) Count(ctx context.Context) (int, error) {
	list, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func (s *Store) load(ctx context.Context) ([]User, error) {
	var list []User
	err := s.storage.Load(ctx, common.KeyUsers, &list)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	return list, nil
}

func (s *Store) record(ctx context.Context, eventType string, data map[string]any) {
	if s.events != nil {
		s.events.Record(ctx, eventType, data)
	}
}
