// Package storage defines the backend-neutral persistence contract of the
// MoodCam core. Two implementations exist: an embedded relational store
// (sqlite) and a key-value store (kv). Both must behave identically; the
// shared suite in storagetest enforces the parity.
package storage

import (
	"context"

	"github.com/jaynujangad03/moodcam/internal/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// Create durably stores a new user. Returns common.ErrDuplicateEmail if
	// the email is already registered; the existing record is left untouched.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the stored record, or common.ErrNotFound. A missing
	// user is a normal empty result for callers, not a fault.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// EntryRepository persists per-user mood entries. Each user's entries form a
// partition keyed by email; no operation crosses partitions.
type EntryRepository interface {
	// Append adds an entry to the owner's partition. On the key-value backend
	// this is a read-modify-write of the whole list and is not atomic across
	// concurrent writers; the design assumes a single writer per device.
	Append(ctx context.Context, ownerEmail string, entry *models.MoodEntry) error

	// ListAll returns the owner's entries in insertion order. An owner with
	// no entries yet gets an empty slice, not an error.
	ListAll(ctx context.Context, ownerEmail string) ([]models.MoodEntry, error)

	// ClearAll removes the owner's entire partition.
	ClearAll(ctx context.Context, ownerEmail string) error
}

// ProfileRepository persists the per-user display name from the settings
// screen.
type ProfileRepository interface {
	SetName(ctx context.Context, email, name string) error

	// GetName returns the saved name, or "" when none was saved.
	GetName(ctx context.Context, email string) (string, error)
}

// Store aggregates the repositories of one backend.
type Store interface {
	// Init idempotently ensures the backing schema exists. It only ever
	// creates schema, never mutates data.
	Init(ctx context.Context) error

	Users() UserRepository
	Entries() EntryRepository
	Profiles() ProfileRepository

	Close() error
}
