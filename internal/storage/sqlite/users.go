package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/dbx"
	"github.com/jaynujangad03/moodcam/internal/models"
)

// UserRepository implements storage.UserRepository.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create checks for an existing email and inserts inside one transaction, so
// a duplicate registration can never clobber the stored credentials. The
// UNIQUE index on email remains as a schema-level backstop.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var n int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM users WHERE email = ?`, user.Email).Scan(&n)
		if err != nil {
			return fmt.Errorf("%w: check email: %v", common.ErrStorageFailure, err)
		}
		if n > 0 {
			return common.ErrDuplicateEmail
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, first_name, email, password_hash)
			VALUES (?, ?, ?, ?)`,
			user.ID, user.FirstName, user.Email, user.PasswordHash)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return common.ErrDuplicateEmail
			}
			return fmt.Errorf("%w: insert user: %v", common.ErrStorageFailure, err)
		}
		return nil
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, first_name, email, password_hash FROM users WHERE email = ?`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.FirstName, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: select user: %v", common.ErrStorageFailure, err)
	}
	return u, nil
}
