// Package events keeps the bounded security-event log: a fixed-capacity
// ring persisted as one encrypted blob. Every other component only appends;
// diagnostics read.
package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/logging"
)

// DefaultCapacity bounds the ring; the oldest event is evicted first.
const DefaultCapacity = 100

// Event is a single security event. Data carries event-specific details and
// must never contain secrets or password material.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// Store is where the log persists itself. Satisfied by storage.Secure.
type Store interface {
	Save(ctx context.Context, key string, v any) error
	Load(ctx context.Context, key string, v any) error
}

// Log is the bounded ring of security events.
type Log struct {
	mu       sync.Mutex
	entries  []Event
	capacity int
	store    Store
	log      logging.Logger
	now      func() time.Time
}

// NewLog builds a Log with the given capacity (DefaultCapacity when <= 0),
// loading any previously persisted events. store may be nil for an
// in-memory-only log.
func NewLog(ctx context.Context, capacity int, store Store, log logging.Logger) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l := &Log{
		capacity: capacity,
		store:    store,
		log:      log,
		now:      time.Now,
	}
	l.restore(ctx)
	return l
}

func (l *Log) restore(ctx context.Context) {
	if l.store == nil {
		return
	}
	var persisted []Event
	err := l.store.Load(ctx, common.KeyEvents, &persisted)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			l.log.Warn(ctx, "failed to restore security events", "error", err)
		}
		return
	}
	if len(persisted) > l.capacity {
		persisted = persisted[len(persisted)-l.capacity:]
	}
	l.entries = persisted
}

// Record appends an event, evicting the oldest entry when the ring is full,
// and persists the log. Persistence failures are logged and swallowed: the
// event log must never fail its callers.
func (l *Log) Record(ctx context.Context, eventType string, data map[string]any) {
	l.mu.Lock()
	l.entries = append(l.entries, Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: l.now(),
		Data:      data,
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	snapshot := make([]Event, len(l.entries))
	copy(snapshot, l.entries)
	l.mu.Unlock()

	l.log.Debug(ctx, "security event", "type", eventType)

	if l.store == nil {
		return
	}
	if err := l.store.Save(ctx, common.KeyEvents, snapshot); err != nil {
		l.log.Warn(ctx, "failed to persist security events", "error", err)
	}
}

// Recent returns up to n events, newest last. n <= 0 returns everything.
func (l *Log) Recent(n int) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Event, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len reports the number of retained events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
