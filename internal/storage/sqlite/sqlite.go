// Package sqlite implements the storage contract on an embedded SQLite
// database (modernc.org/sqlite, pure Go). Schema is managed with embedded
// goose migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jaynujangad03/moodcam/internal/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store is the SQLite-backed storage.Store.
type Store struct {
	db *sql.DB

	users    *UserRepository
	entries  *EntryRepository
	profiles *ProfileRepository
}

// Open opens (or creates) the database at dsn. The pool is capped at one
// connection: the core assumes a single writer per device, and a single
// connection also keeps ":memory:" databases coherent under test.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &Store{
		db:       db,
		users:    NewUserRepository(db),
		entries:  NewEntryRepository(db),
		profiles: NewProfileRepository(db),
	}, nil
}

// Init applies pending migrations. Safe to call on every start; goose keeps
// a version table and re-running is a no-op.
func (s *Store) Init(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Users() storage.UserRepository       { return s.users }
func (s *Store) Entries() storage.EntryRepository    { return s.entries }
func (s *Store) Profiles() storage.ProfileRepository { return s.profiles }

func (s *Store) Close() error {
	return s.db.Close()
}
