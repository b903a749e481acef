// Package storagetest holds the contract test suite shared by every storage
// backend. Behavioral parity between the key-value and relational variants
// is enforced here rather than assumed: each backend's test package runs
// Run against a fresh store.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/models"
	"github.com/jaynujangad03/moodcam/internal/storage"
)

// Factory returns a freshly initialized, empty store. Cleanup should be
// registered on t by the factory itself.
type Factory func(t *testing.T) storage.Store

// Run exercises the full storage contract against the given backend.
func Run(t *testing.T, newStore Factory) {
	t.Run("InitIsIdempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Init(context.Background()))
		require.NoError(t, s.Init(context.Background()))
	})

	t.Run("Users", func(t *testing.T) {
		testUsers(t, newStore)
	})
	t.Run("Entries", func(t *testing.T) {
		testEntries(t, newStore)
	})
	t.Run("Profiles", func(t *testing.T) {
		testProfiles(t, newStore)
	})
}

func testUsers(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		s := newStore(t)
		u := &models.User{ID: "u1", FirstName: "Jay", Email: "jay@example.com", PasswordHash: "hash1"}
		require.NoError(t, s.Users().Create(ctx, u))

		got, err := s.Users().GetByEmail(ctx, "jay@example.com")
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("GetMissingIsNotFound", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Users().GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("DuplicateEmailKeepsExistingRecord", func(t *testing.T) {
		s := newStore(t)
		first := &models.User{ID: "u1", FirstName: "Jay", Email: "jay@example.com", PasswordHash: "hash1"}
		require.NoError(t, s.Users().Create(ctx, first))

		second := &models.User{ID: "u2", FirstName: "Impostor", Email: "jay@example.com", PasswordHash: "hash2"}
		err := s.Users().Create(ctx, second)
		assert.ErrorIs(t, err, common.ErrDuplicateEmail)

		got, err := s.Users().GetByEmail(ctx, "jay@example.com")
		require.NoError(t, err)
		assert.Equal(t, first, got, "existing record must not be altered")
	})

	t.Run("MultipleUsersCoexist", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Users().Create(ctx, &models.User{ID: "a", FirstName: "A", Email: "a@example.com", PasswordHash: "ha"}))
		require.NoError(t, s.Users().Create(ctx, &models.User{ID: "b", FirstName: "B", Email: "b@example.com", PasswordHash: "hb"}))

		a, err := s.Users().GetByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		b, err := s.Users().GetByEmail(ctx, "b@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func entry(id, date, emoji, label string, ts int64) *models.MoodEntry {
	return &models.MoodEntry{
		ID:        id,
		Date:      date,
		Mood:      models.Mood{Emoji: emoji, Label: label},
		Note:      "note " + id,
		Photo:     "/photos/" + id + ".jpg",
		Timestamp: ts,
	}
}

func testEntries(t *testing.T, newStore Factory) {
	ctx := context.Background()
	owner := "jay@example.com"

	t.Run("ListEmptyPartition", func(t *testing.T) {
		s := newStore(t)
		got, err := s.Entries().ListAll(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("AppendThenListLastElement", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Entries().Append(ctx, owner, entry("e1", "2024-01-01", "😢", "Sad", 100)))
		e2 := entry("e2", "2024-01-02", "😊", "Happy", 200)
		require.NoError(t, s.Entries().Append(ctx, owner, e2))

		got, err := s.Entries().ListAll(ctx, owner)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, *e2, got[len(got)-1])
	})

	t.Run("InsertionOrderPreserved", func(t *testing.T) {
		s := newStore(t)
		// Appended out of date order on purpose: stored order is insertion
		// order, not date order.
		days := []string{"2024-03-05", "2024-03-01", "2024-03-03"}
		for i, d := range days {
			require.NoError(t, s.Entries().Append(ctx, owner, entry(d, d, "😐", "Neutral", int64(i))))
		}

		got, err := s.Entries().ListAll(ctx, owner)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, d := range days {
			assert.Equal(t, d, got[i].Date)
		}
	})

	t.Run("MultipleEntriesPerDayAllowed", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Entries().Append(ctx, owner, entry("e1", "2024-01-01", "😊", "Happy", 100)))
		require.NoError(t, s.Entries().Append(ctx, owner, entry("e2", "2024-01-01", "😢", "Sad", 200)))

		got, err := s.Entries().ListAll(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("PartitionsAreIsolated", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Entries().Append(ctx, "a@example.com", entry("ea", "2024-01-01", "😊", "Happy", 1)))
		require.NoError(t, s.Entries().Append(ctx, "b@example.com", entry("eb", "2024-01-01", "😢", "Sad", 2)))

		a, err := s.Entries().ListAll(ctx, "a@example.com")
		require.NoError(t, err)
		require.Len(t, a, 1)
		assert.Equal(t, "ea", a[0].ID)

		require.NoError(t, s.Entries().ClearAll(ctx, "a@example.com"))

		b, err := s.Entries().ListAll(ctx, "b@example.com")
		require.NoError(t, err)
		assert.Len(t, b, 1, "clearing one partition must not touch another")
	})

	t.Run("ClearAllThenListEmpty", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Entries().Append(ctx, owner, entry("e1", "2024-01-01", "😊", "Happy", 1)))
		require.NoError(t, s.Entries().ClearAll(ctx, owner))

		got, err := s.Entries().ListAll(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ClearEmptyPartitionIsNoError", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Entries().ClearAll(ctx, "nobody@example.com"))
	})
}

func testProfiles(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("GetUnsetNameIsEmpty", func(t *testing.T) {
		s := newStore(t)
		name, err := s.Profiles().GetName(ctx, "jay@example.com")
		require.NoError(t, err)
		assert.Equal(t, "", name)
	})

	t.Run("SetGetOverwrite", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Profiles().SetName(ctx, "jay@example.com", "Jay"))
		require.NoError(t, s.Profiles().SetName(ctx, "jay@example.com", "Jay N."))

		name, err := s.Profiles().GetName(ctx, "jay@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Jay N.", name)
	})
}
