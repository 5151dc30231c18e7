package main

import (
	"context"
	"fmt"

	badgerstore "applause-ledger/internal/adapters/storage/badger"
	"applause-ledger/internal/adapters/storage/memory"
	pg "applause-ledger/internal/adapters/storage/postgres"
	"applause-ledger/internal/platform/config"
	"applause-ledger/internal/platform/kv"
	"applause-ledger/internal/platform/logger"
)

func openStore(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		log.Warn("using in-memory store: data is lost on restart", nil)
		return memory.NewStore(), nil

	case config.BackendBadger:
		c := badgerstore.DefaultConfig(cfg.BadgerPath)
		c.Logger = log
		store, err := badgerstore.Open(c)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.BackendPostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		store := pg.NewKVStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
