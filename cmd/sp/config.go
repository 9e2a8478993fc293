package main

import (
	"fmt"
	"os"

	"study-planner/internal/config"
	"study-planner/internal/store"
)

// StoreFactory creates store instances based on the configured backend
type StoreFactory struct {
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given configuration
func NewStoreFactory(cfg *config.Config) *StoreFactory {
	return &StoreFactory{cfg: cfg}
}

// CreateStore creates a blob store instance for the configured backend
func (sf *StoreFactory) CreateStore() (store.Store, error) {
	switch sf.cfg.Store.Backend {
	case config.BackendSQLite:
		return sf.createSQLiteStore()
	case config.BackendRemote:
		return store.NewRemote(sf.cfg.Remote.URL, sf.cfg.Remote.Timeout), nil
	case config.BackendMemory:
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", sf.cfg.Store.Backend)
	}
}

func (sf *StoreFactory) createSQLiteStore() (store.Store, error) {
	if err := os.MkdirAll(sf.cfg.Store.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	st, err := store.NewSQLiteWithTimeout(sf.cfg.GetStorePath(), sf.cfg.Store.WriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}
	return st, nil
}
