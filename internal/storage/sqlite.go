package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/dbx"
)

// SQLiteKV implements KV over a DBTX (either *sql.DB or *sql.Tx). The schema
// is created by the embedded goose migrations, see Open.
type SQLiteKV struct {
	db dbx.DBTX
}

// NewSQLiteKV returns a SQLiteKV bound to the given DBTX.
func NewSQLiteKV(db dbx.DBTX) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (r *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get storage[%s]: %v", common.ErrorStorage, key, err)
	}
	return value, true, nil
}

func (r *SQLiteKV) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set storage[%s]: %v", common.ErrorStorage, key, err)
	}
	return nil
}

func (r *SQLiteKV) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete storage[%s]: %v", common.ErrorStorage, key, err)
	}
	return nil
}

// Destroy overwrites the value under key with junk and deletes the row in a
// single transaction. When the handle is already transactional the two
// statements run on it sequentially.
func (r *SQLiteKV) Destroy(ctx context.Context, key, junk string) error {
	run := func(ctx context.Context, tx dbx.DBTX) error {
		in := &SQLiteKV{db: tx}
		if err := in.Set(ctx, key, junk); err != nil {
			return err
		}
		return in.Delete(ctx, key)
	}

	db, ok := r.db.(*sql.DB)
	if !ok {
		return run(ctx, r.db)
	}
	if err := dbx.WithTx(ctx, db, nil, run); err != nil {
		if errors.Is(err, common.ErrorStorage) {
			return err
		}
		return fmt.Errorf("%w: destroy storage[%s]: %v", common.ErrorStorage, key, err)
	}
	return nil
}
