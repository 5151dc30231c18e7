package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"applause-ledger/internal/platform/kv"
)

// KVStore implementa kv.Store sobre una tabla key/value (jsonb), con el
// mismo formato que la tabla kv_store de Supabase.
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema crea la tabla si no existe. No hay cadena de migraciones.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key   TEXT  NOT NULL PRIMARY KEY,
			value JSONB NOT NULL
		)
	`)
	return err
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key)

	var v []byte
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *KVStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	placeholders := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, k)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM kv_store WHERE key IN (`+strings.Join(placeholders, ",")+`)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byKey := make(map[string][]byte, len(keys))
	for rows.Next() {
		var k string
		var v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		byKey[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, k := range keys {
		out[i] = byKey[k]
	}
	return out, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Commit(ctx, []kv.Op{{Key: key, Value: value}})
}

func (s *KVStore) ScanPrefix(ctx context.Context, prefix string) ([]kv.Pair, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value
		FROM kv_store
		WHERE key LIKE $1 ESCAPE '\'
		ORDER BY key ASC
	`, escapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kv.Pair, 0)
	for rows.Next() {
		var p kv.Pair
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Commit aplica todas las ops en una transacción.
func (s *KVStore) Commit(ctx context.Context, ops []kv.Op) error {
	if err := kv.ValidateOps(ops); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, op := range ops {
		if op.CreateOnly {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO kv_store (key, value) VALUES ($1, $2)
				ON CONFLICT (key) DO NOTHING
			`, op.Key, string(op.Value))
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return kv.ErrKeyExists
			}
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO kv_store (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`, op.Key, string(op.Value)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close cierra el pool.
func (s *KVStore) Close() error {
	return s.db.Close()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
