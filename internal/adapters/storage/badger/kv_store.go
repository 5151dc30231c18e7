// Package badger implementa kv.Store sobre BadgerDB (embebido, durable).
// El Commit corre en una sola transacción de Badger, así que person + history
// quedan escritos juntos o no quedan.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"applause-ledger/internal/platform/kv"
	"applause-ledger/internal/platform/logger"
)

// maxConflictRetries acota los reintentos ante badger.ErrConflict (SSI).
const maxConflictRetries = 3

type Config struct {
	// Path es el directorio de datos. Se ignora si InMemory es true.
	Path string

	// InMemory: sin disco, para tests.
	InMemory bool

	SyncWrites bool

	// Logger opcional; nil apaga el logging interno de Badger.
	Logger logger.Logger
}

func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

func InMemoryConfig() Config {
	return Config{InMemory: true}
}

type Store struct {
	db *badger.DB
}

func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("badger: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{log: cfg.Logger.With(map[string]any{"component": "badger"})})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open database: %w", err)
	}
	return &Store{db: db}, nil
}

func OpenInMemory() (*Store, error) {
	return Open(InMemoryConfig())
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badger: get %s: %w", key, err)
	}
	return out, nil
}

func (s *Store) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([][]byte, len(keys))
	err := s.db.View(func(txn *badger.Txn) error {
		for i, k := range keys {
			item, err := txn.Get([]byte(k))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if out[i], err = item.ValueCopy(nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger: mget: %w", err)
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

	out := make([]kv.Pair, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out = append(out, kv.Pair{Key: string(item.KeyCopy(nil)), Value: v})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger: scan %s: %w", prefix, err)
	}
	return out, nil
}

func (s *Store) Commit(ctx context.Context, ops []kv.Op) error {
	if err := kv.ValidateOps(ops); err != nil {
		return err
	}

	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			for _, op := range ops {
				if op.CreateOnly {
					_, gerr := txn.Get([]byte(op.Key))
					if gerr == nil {
						return kv.ErrKeyExists
					}
					if !errors.Is(gerr, badger.ErrKeyNotFound) {
						return gerr
					}
				}
				if serr := txn.Set([]byte(op.Key), op.Value); serr != nil {
					return serr
				}
			}
			return nil
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, kv.ErrKeyExists):
		return err
	default:
		return fmt.Errorf("badger: commit: %w", err)
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger adapta logger.Logger a la interfaz de logging de Badger.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...), nil)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...), nil)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...), nil)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...), nil)
}
