// Package sqlite persists accounts and trades in a single-file SQLite
// database. The API path opens one connection per request and closes it
// before returning; the seeding commands are the only writers.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// DefaultPath is the development database location used when no path is
// configured or given on the command line.
const DefaultPath = "trademindiq.db"

const defaultTimeout = 5 * time.Second

// Store hands out short-lived connections to the database file at a fixed,
// externally configured path.
type Store struct {
	path    string
	timeout time.Duration
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path, timeout: defaultTimeout}
}

// Path returns the configured database file location.
func (s *Store) Path() string { return s.path }

// Exists reports whether the database file is currently present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Open returns a connection to an existing database. The existence check
// runs before the driver is involved so a missing file reports
// domain.ErrStoreNotFound instead of an opaque open failure.
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	if !s.Exists() {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
	}
	return s.open(ctx)
}

// Create returns a connection to the database, creating the file if absent.
// Only the seeding commands use this; the API never creates the store.
func (s *Store) Create(ctx context.Context) (*sql.DB, error) {
	return s.open(ctx)
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}
	return db, nil
}
