// Package kv implements the storage contract on an embedded key-value store
// (bbolt). Records are JSON blobs under per-concept buckets whose keys are
// the owner's email, mirroring the app's original key-value layout
// (user, moodEntries_<email>, profileName_<email>).
package kv

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jaynujangad03/moodcam/internal/storage"
)

var (
	bucketUsers    = []byte("user")
	bucketEntries  = []byte("moodEntries")
	bucketProfiles = []byte("profileName")
)

// Store is the bbolt-backed storage.Store.
type Store struct {
	db *bolt.DB

	users    *UserRepository
	entries  *EntryRepository
	profiles *ProfileRepository
}

// Open opens (or creates) the store file at path. bbolt takes an exclusive
// file lock, which matches the single-writer-per-device assumption.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open kv store: %w", err)
	}
	return &Store{
		db:       db,
		users:    &UserRepository{db: db},
		entries:  &EntryRepository{db: db},
		profiles: &ProfileRepository{db: db},
	}, nil
}

// Init idempotently creates the buckets. Never touches existing data.
func (s *Store) Init(ctx context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketUsers, bucketEntries, bucketProfiles} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create buckets: %w", err)
	}
	return nil
}

func (s *Store) Users() storage.UserRepository       { return s.users }
func (s *Store) Entries() storage.EntryRepository    { return s.entries }
func (s *Store) Profiles() storage.ProfileRepository { return s.profiles }

func (s *Store) Close() error {
	return s.db.Close()
}
