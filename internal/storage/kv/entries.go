package kv

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/models"
)

// EntryRepository stores each owner's full entry list as one JSON array,
// exactly as the original key-value layout did. Append is therefore a
// read-modify-write of the whole list; two interleaved appends from separate
// processes could lose one write. The single-writer-per-device assumption is
// deliberate and documented rather than fixed, since fixing it changes
// observable behavior.
type EntryRepository struct {
	db *bolt.DB
}

func (r *EntryRepository) Append(ctx context.Context, ownerEmail string, entry *models.MoodEntry) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEntries)

		entries := []models.MoodEntry{}
		if data := b.Get([]byte(ownerEmail)); data != nil {
			if err := json.Unmarshal(data, &entries); err != nil {
				return err
			}
		}
		entries = append(entries, *entry)

		data, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		return b.Put([]byte(ownerEmail), data)
	})
	if err != nil {
		return fmt.Errorf("%w: append entry: %v", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *EntryRepository) ListAll(ctx context.Context, ownerEmail string) ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketEntries).Get([]byte(ownerEmail))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &entries)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", common.ErrStorageFailure, err)
	}
	return entries, nil
}

func (r *EntryRepository) ClearAll(ctx context.Context, ownerEmail string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEntries).Delete([]byte(ownerEmail))
	})
	if err != nil {
		return fmt.Errorf("%w: clear entries: %v", common.ErrStorageFailure, err)
	}
	return nil
}
