// Package storage provides the persistence substrate of the security core —
// a string-keyed, string-valued store modeled on browser localStorage — and
// the Secure facade that is the only component allowed to touch it directly.
//
// Two adapters exist: an in-memory map with an optional capacity limit and a
// SQLite database managed through goose migrations.
package storage

import "context"

// KV is the persistence substrate. Get returns ("", false, nil) when the key
// is absent. Implementations must tolerate being the single writer only; the
// load-mutate-save discipline above them assumes no concurrent writers.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Destroyer is an optional KV extension for substrates that can overwrite
// and delete a key atomically, so a crash between the two steps cannot leave
// the junk overwrite behind. The Secure facade prefers it when present.
type Destroyer interface {
	Destroy(ctx context.Context, key, junk string) error
}
