package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/cryptox"
	"github.com/exebots/secstore/internal/logging"
	"github.com/exebots/secstore/internal/randx"
)

// EventSink receives security events from the storage layer. The event log
// itself persists through Secure, so the dependency points this way.
type EventSink interface {
	Record(ctx context.Context, eventType string, data map[string]any)
}

// Secure combines the substrate with the authenticated cipher: every value
// goes in encrypted under the master key and comes out verified. It is the
// only component that parses blobs.
//
// Blobs written by the legacy XOR cipher are migrated transparently: when
// the primary codec rejects a blob, the legacy codec is tried, and on
// success the value is rewritten under the primary scheme.
type Secure struct {
	kv     KV
	codec  cryptox.Codec
	legacy cryptox.Codec
	key    []byte
	log    logging.Logger
	events EventSink
}

// NewSecure builds the facade. legacy and events may be nil; log must not be.
func NewSecure(kv KV, key []byte, log logging.Logger) *Secure {
	return &Secure{
		kv:     kv,
		codec:  cryptox.NewAESGCM(),
		legacy: cryptox.NewLegacyXOR(),
		key:    key,
		log:    log,
	}
}

// WithEvents attaches an event sink and returns s for chaining.
func (s *Secure) WithEvents(events EventSink) *Secure {
	s.events = events
	return s
}

// Save encrypts v and stores it under key. A substrate failure is logged and
// returned as common.ErrorStorage; callers treat it as non-fatal.
func (s *Secure) Save(ctx context.Context, key string, v any) error {
	blob, err := s.codec.Encrypt(s.key, v)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, key, blob); err != nil {
		s.log.Warn(ctx, "secure save failed", "key", key, "error", err)
		if errors.Is(err, common.ErrorStorage) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrorStorage, err)
	}
	return nil
}

// Load reads and decrypts the value under key into v. An absent key yields
// common.ErrorNotFound. A blob that fails both codecs is treated as absent:
// the failure is logged, an integrity_failure event is recorded, and
// common.ErrorNotFound is returned — never a silently-wrong value.
func (s *Secure) Load(ctx context.Context, key string, v any) error {
	blob, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "secure load failed", "key", key, "error", err)
		return fmt.Errorf("%w: %v", common.ErrorStorage, err)
	}
	if !ok {
		return common.ErrorNotFound
	}

	err = s.codec.Decrypt(s.key, blob, v)
	if err == nil {
		return nil
	}

	if errors.Is(err, common.ErrorIntegrity) && s.legacy != nil {
		if lerr := s.legacy.Decrypt(s.key, blob, v); lerr == nil {
			s.migrate(ctx, key, v)
			return nil
		}
	}

	s.log.Warn(ctx, "discarding unreadable blob", "key", key, "error", err)
	if s.events != nil {
		s.events.Record(ctx, "integrity_failure", map[string]any{"key": key})
	}
	return common.ErrorNotFound
}

// migrate rewrites a legacy blob under the primary codec. Best effort: the
// decrypted value is already in the caller's hands either way.
func (s *Secure) migrate(ctx context.Context, key string, v any) {
	if err := s.Save(ctx, key, v); err != nil {
		s.log.Warn(ctx, "legacy blob migration failed", "key", key, "error", err)
		return
	}
	s.log.Info(ctx, "migrated legacy blob", "key", key)
}

// Remove deletes the value under key, first overwriting it with random bytes
// so the old ciphertext does not linger in the substrate. On substrates that
// implement Destroyer the overwrite and delete commit atomically. Idempotent.
func (s *Secure) Remove(ctx context.Context, key string) error {
	junk, err := randx.AlphaString(1000)
	if err != nil {
		junk = ""
	}

	if d, ok := s.kv.(Destroyer); ok {
		if err := d.Destroy(ctx, key, junk); err != nil {
			return fmt.Errorf("%w: %v", common.ErrorStorage, err)
		}
		return nil
	}

	if junk != "" {
		_ = s.kv.Set(ctx, key, junk)
	}
	if err := s.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorage, err)
	}
	return nil
}
