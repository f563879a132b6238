// Package ratelimit implements the per-actor, per-action attempt counter
// with a sliding window and a block/cool-down state machine:
//
//	Clear -> Counting -> Blocked -> Clear
//
// State is in-memory only and scoped to the process lifetime; the limiter
// needs no crypto, only a clock.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/exebots/secstore/internal/logging"
)

// Policy configures one action's limits.
type Policy struct {
	MaxAttempts int
	Window      time.Duration
	BlockFor    time.Duration
}

// Presets mirroring the storefront's configuration.
var (
	PolicyLogin    = Policy{MaxAttempts: 5, Window: 15 * time.Minute, BlockFor: 30 * time.Minute}
	PolicyRegister = Policy{MaxAttempts: 3, Window: 15 * time.Minute, BlockFor: 30 * time.Minute}
	PolicyPayment  = Policy{MaxAttempts: 5, Window: 5 * time.Minute, BlockFor: 5 * time.Minute}
)

// RateLimitedError reports a blocked attempt and how long until the block
// lifts. Match with errors.As.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

// EventSink receives rate_limit_exceeded events. May be nil.
type EventSink interface {
	Record(ctx context.Context, eventType string, data map[string]any)
}

type entry struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

type key struct {
	actor  string
	action string
}

// Limiter is safe for concurrent use. The zero value is not usable; call New.
type Limiter struct {
	mu      sync.Mutex
	entries map[key]*entry
	log     logging.Logger
	events  EventSink
	now     func() time.Time
}

func New(log logging.Logger, events EventSink) *Limiter {
	return &Limiter{
		entries: make(map[key]*entry),
		log:     log,
		events:  events,
		now:     time.Now,
	}
}

// RecordAttempt registers one attempt for (actor, action) under p and
// returns the attempt count within the current window.
//
// A blocked pair fails with *RateLimitedError until blockedUntil; an attempt
// arriving exactly at blockedUntil is unblocked. Exceeding MaxAttempts
// transitions to Blocked, logs a rate_limit_exceeded event, and fails.
func (l *Limiter) RecordAttempt(ctx context.Context, actor, action string, p Policy) (int, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	k := key{actor: actor, action: action}
	e := l.entries[k]
	if e == nil {
		e = &entry{windowStart: now}
		l.entries[k] = e
	}

	if !e.blockedUntil.IsZero() {
		if now.Before(e.blockedUntil) {
			return e.count, &RateLimitedError{RetryAfter: retryAfter(e.blockedUntil.Sub(now))}
		}
		// block elapsed: back to Clear, proceed as a fresh attempt
		*e = entry{windowStart: now}
	}

	if now.Sub(e.windowStart) > p.Window {
		e.count = 0
		e.windowStart = now
	}

	e.count++

	if e.count > p.MaxAttempts {
		e.blockedUntil = now.Add(p.BlockFor)

		l.log.Warn(ctx, "rate limit exceeded",
			"actor", actor, "action", action, "attempts", e.count)
		if l.events != nil {
			l.events.Record(ctx, "rate_limit_exceeded", map[string]any{
				"actor":    actor,
				"action":   action,
				"attempts": e.count,
			})
		}
		return e.count, &RateLimitedError{RetryAfter: retryAfter(p.BlockFor)}
	}

	return e.count, nil
}

// ResetAttempts forces (actor, action) back to Clear. Called after a
// verified success so legitimate users are not penalized by prior failures.
func (l *Limiter) ResetAttempts(actor, action string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key{actor: actor, action: action})
}

// Blocked reports whether (actor, action) is currently in the Blocked state.
func (l *Limiter) Blocked(actor, action string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[key{actor: actor, action: action}]
	return e != nil && !e.blockedUntil.IsZero() && l.now().Before(e.blockedUntil)
}

func retryAfter(d time.Duration) time.Duration {
	if d < time.Second {
		return time.Second
	}
	return d
}
