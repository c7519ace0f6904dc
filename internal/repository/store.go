package repository

import (
	"context"
	"fmt"
)

// KVStore is the key-value capability behind notes, favorites and devices.
// Values are JSON strings; the store does not interpret them.
type KVStore interface {
	// Get returns the value for key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Scoped namespaces every key of an underlying store with a prefix
type Scoped struct {
	store  KVStore
	prefix string
}

// NewScoped returns a view of store whose keys are prefixed with "<scope>:"
func NewScoped(store KVStore, scope string) *Scoped {
	return &Scoped{store: store, prefix: scope + ":"}
}

// Get reads key within the scope
func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.prefix+key)
}

// Set writes key within the scope
func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

// Close is a no-op; the underlying store is owned by its creator
func (s *Scoped) Close() error {
	return nil
}

// Config selects and configures a store backend
type Config struct {
	Driver    string // memory, file, redis, postgres, sqlite
	DSN       string // connection string or path, per driver
	RedisAddr string
}

// Open creates the store backend named by cfg.Driver
func Open(ctx context.Context, cfg Config) (KVStore, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.DSN)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisAddr)
	case "postgres":
		return NewPostgresStore(ctx, cfg.DSN)
	case "sqlite", "sqlite3":
		return NewSQLiteStore(ctx, cfg.DSN)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
