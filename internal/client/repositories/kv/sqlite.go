package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/dmitrijs2005/pocketbank/internal/dbx"
)

// SQLiteRepository implements TxStore over the kv table.
type SQLiteRepository struct {
	q dbx.DBTX
	// db is nil for a repository bound to a running transaction.
	db dbx.TxBeginner
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{q: db, db: db}
}

func storageErr(op, key string, err error) error {
	if key == "" {
		return fmt.Errorf("%w: failed to %s kv: %w", common.ErrStorage, op, err)
	}
	return fmt.Errorf("%w: failed to %s kv[%s]: %w", common.ErrStorage, op, key, err)
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return storageErr("set", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, key string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return storageErr("remove", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return storageErr("clear", "", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, storageErr("list", "", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storageErr("scan", "", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate", "", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Atomically(ctx context.Context, fn func(ctx context.Context, s TxStore) error) error {
	if r.db == nil {
		return fn(ctx, r)
	}

	var fnErr error
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		fnErr = fn(ctx, &SQLiteRepository{q: tx})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return err
}
