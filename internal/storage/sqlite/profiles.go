package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/dbx"
)

// ProfileRepository implements storage.ProfileRepository.
type ProfileRepository struct {
	db dbx.DBTX
}

func NewProfileRepository(db dbx.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) SetName(ctx context.Context, email, name string) error {
	query := `INSERT INTO profiles (email, name) VALUES (?, ?)
			ON CONFLICT(email) DO UPDATE SET name = excluded.name`

	_, err := r.db.ExecContext(ctx, query, email, name)
	if err != nil {
		return fmt.Errorf("%w: upsert profile name: %v", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *ProfileRepository) GetName(ctx context.Context, email string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM profiles WHERE email = ?`, email).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%w: select profile name: %v", common.ErrStorageFailure, err)
	}
	return name, nil
}
