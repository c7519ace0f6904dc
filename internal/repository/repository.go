package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type dialect struct {
	driver string
	schema string
	get    string
	upsert string
}

var postgres = dialect{
	driver: "postgres",
	schema: `
		CREATE TABLE IF NOT EXISTS calc_kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	get: `SELECT value FROM calc_kv WHERE key = $1`,
	upsert: `
		INSERT INTO calc_kv (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`,
}

var sqlite = dialect{
	driver: "sqlite3",
	schema: `
		CREATE TABLE IF NOT EXISTS calc_kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	get: `SELECT value FROM calc_kv WHERE key = ?`,
	upsert: `
		INSERT INTO calc_kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
}

// Repository is a KVStore on a SQL database
type Repository struct {
	db *sql.DB
	d  dialect
}

// NewRepository wraps an open database and makes sure the table exists
func NewRepository(ctx context.Context, db *sql.DB, driver string) (*Repository, error) {
	d := postgres
	if driver == sqlite.driver {
		d = sqlite
	}
	r := &Repository{db: db, d: d}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return r, nil
}

// NewPostgresStore opens and pings a PostgreSQL database
func NewPostgresStore(ctx context.Context, dsn string) (*Repository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	r, err := NewRepository(ctx, db, postgres.driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// NewSQLiteStore opens a SQLite database file in WAL mode
func NewSQLiteStore(ctx context.Context, path string) (*Repository, error) {
	if path == "" {
		path = "./data/calc.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	r, err := NewRepository(ctx, db, sqlite.driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Get retrieves the value stored under key
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.d.get, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key
func (r *Repository) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, r.d.upsert, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Close closes the database
func (r *Repository) Close() error {
	return r.db.Close()
}
