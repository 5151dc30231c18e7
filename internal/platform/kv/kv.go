// Package kv define el contrato del key-value store sobre el que vive el ledger.
// El store es "opaco": get/set/mget/scan por prefijo, más un Commit multi-key
// todo-o-nada que usan los repos para no dejar escrituras a medias.
package kv

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("kv: key not found")
	ErrKeyExists = errors.New("kv: key already exists")
	ErrEmptyKey  = errors.New("kv: empty key")
)

type Pair struct {
	Key   string
	Value []byte
}

// Op es una escritura dentro de un Commit.
// CreateOnly: falla todo el commit con ErrKeyExists si la key ya existe.
type Op struct {
	Key        string
	Value      []byte
	CreateOnly bool
}

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// MGet respeta el orden de keys; las que no existen quedan en nil.
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// ScanPrefix devuelve los pares ordenados por key asc.
	ScanPrefix(ctx context.Context, prefix string) ([]Pair, error)
	Commit(ctx context.Context, ops []Op) error
	Close() error
}

// ValidateOps chequea keys vacías y duplicadas antes de tocar el backend.
func ValidateOps(ops []Op) error {
	seen := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		if strings.TrimSpace(op.Key) == "" {
			return ErrEmptyKey
		}
		if _, dup := seen[op.Key]; dup {
			return errors.New("kv: duplicate key in commit: " + op.Key)
		}
		seen[op.Key] = struct{}{}
	}
	return nil
}
