package store

import (
	"context"
	"database/sql"
	"time"

	"study-planner/internal/errors"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database with one row per
// collection. It is the default backend.
type SQLiteStore struct {
	db           *sql.DB
	writeTimeout time.Duration
}

// NewSQLite creates a new SQLite-backed store at the given path. The path
// ":memory:" yields a throwaway database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	return NewSQLiteWithTimeout(dbPath, 0)
}

// NewSQLiteWithTimeout creates a SQLite-backed store whose writes carry a
// deadline. A zero timeout disables it.
func NewSQLiteWithTimeout(dbPath string, writeTimeout time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStoreError("open database", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, errors.NewStoreError("run migrations", err)
	}

	return &SQLiteStore{db: db, writeTimeout: writeTimeout}, nil
}

// migrate applies the schema. Versions are linear; each statement runs at
// most once per database.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return err
	}

	migrations := []struct {
		version int
		up      string
	}{
		{1, `CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`},
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return err
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.up); err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a collection's payload
func (s *SQLiteStore) Get(ctx context.Context, collection Collection) ([]byte, error) {
	query := `SELECT payload FROM collections WHERE name = ?`

	var payload string
	err := s.db.QueryRowContext(ctx, query, string(collection)).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("collection", string(collection))
	}
	if err != nil {
		return nil, errors.NewStoreError("get "+string(collection), err)
	}
	return []byte(payload), nil
}

// Set writes a collection's payload wholesale
func (s *SQLiteStore) Set(ctx context.Context, collection Collection, payload []byte) error {
	query := `
	INSERT INTO collections (name, payload, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	_, err := s.db.ExecContext(ctx, query, string(collection), string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return errors.NewStoreError("set "+string(collection), err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
