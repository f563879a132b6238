package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/exebots/secstore/internal/common"
)

// MemoryKV is a mutex-guarded in-memory substrate. MaxBytes, when positive,
// caps the total stored value size and makes Set fail with
// common.ErrorStorage once exceeded, mimicking a full browser store.
type MemoryKV struct {
	mu       sync.RWMutex
	items    map[string]string
	maxBytes int
	used     int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]string)}
}

// NewBoundedMemoryKV returns a MemoryKV that refuses writes once the total
// value size would exceed maxBytes.
func NewBoundedMemoryKV(maxBytes int) *MemoryKV {
	kv := NewMemoryKV()
	kv.maxBytes = maxBytes
	return kv
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.used - len(m.items[key]) + len(value)
	if m.maxBytes > 0 && next > m.maxBytes {
		return fmt.Errorf("%w: store full (%d of %d bytes)", common.ErrorStorage, next, m.maxBytes)
	}
	m.used = next
	m.items[key] = value
	return nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.used -= len(m.items[key])
	delete(m.items, key)
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
