package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/models"
)

// UserRepository stores one user record per email, unlike the app's original
// key-value target which held a single global record. Keying by email keeps
// the key-value and relational backends behaviorally identical.
type UserRepository struct {
	db *bolt.DB
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		if b.Get([]byte(user.Email)) != nil {
			return common.ErrDuplicateEmail
		}
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put([]byte(user.Email), data)
	})
	if errors.Is(err, common.ErrDuplicateEmail) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: put user: %v", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketUsers).Get([]byte(email))
		if data == nil {
			return common.ErrNotFound
		}
		user = &models.User{}
		return json.Unmarshal(data, user)
	})
	if errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user: %v", common.ErrStorageFailure, err)
	}
	return user, nil
}
