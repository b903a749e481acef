package sqlite

import (
	"context"
	"fmt"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/dbx"
	"github.com/jaynujangad03/moodcam/internal/models"
)

// EntryRepository implements storage.EntryRepository. The seq column
// preserves insertion order across the owner's partition.
type EntryRepository struct {
	db dbx.DBTX
}

func NewEntryRepository(db dbx.DBTX) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Append(ctx context.Context, ownerEmail string, entry *models.MoodEntry) error {
	query := `INSERT INTO entries (id, owner_email, date, mood_emoji, mood_label, note, photo, ts)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, ownerEmail, entry.Date,
		entry.Mood.Emoji, entry.Mood.Label,
		entry.Note, entry.Photo, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: insert entry: %v", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *EntryRepository) ListAll(ctx context.Context, ownerEmail string) ([]models.MoodEntry, error) {
	query := `SELECT id, date, mood_emoji, mood_label, note, photo, ts
			FROM entries WHERE owner_email = ? ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: select entries: %v", common.ErrStorageFailure, err)
	}
	defer rows.Close()

	result := []models.MoodEntry{}
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood.Emoji, &e.Mood.Label, &e.Note, &e.Photo, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", common.ErrStorageFailure, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate entries: %v", common.ErrStorageFailure, err)
	}
	return result, nil
}

func (r *EntryRepository) ClearAll(ctx context.Context, ownerEmail string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE owner_email = ?`, ownerEmail)
	if err != nil {
		return fmt.Errorf("%w: clear entries: %v", common.ErrStorageFailure, err)
	}
	return nil
}
