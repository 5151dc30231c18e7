package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"applause-ledger/internal/platform/kv"
)

// Store es un kv.Store in-memory (modo dev / tests).
// Copia los []byte al entrar y al salir para que nadie mute el estado interno.
type Store struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewStore() *Store {
	return &Store{byKey: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return clone(v), nil
}

func (s *Store) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]byte, len(keys))
	for i, k := range keys {
		if v, ok := s.byKey[k]; ok {
			out[i] = clone(v)
		}
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.Commit(ctx, []kv.Op{{Key: key, Value: value}})
}

func (s *Store) ScanPrefix(ctx context.Context, prefix string) ([]kv.Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]kv.Pair, 0)
	for k, v := range s.byKey {
		if strings.HasPrefix(k, prefix) {
			out = append(out, kv.Pair{Key: k, Value: clone(v)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *Store) Commit(ctx context.Context, ops []kv.Op) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := kv.ValidateOps(ops); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// primero validar todo, después aplicar: todo-o-nada
	for _, op := range ops {
		if _, exists := s.byKey[op.Key]; exists && op.CreateOnly {
			return kv.ErrKeyExists
		}
	}
	for _, op := range ops {
		s.byKey[op.Key] = clone(op.Value)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
