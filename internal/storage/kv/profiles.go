package kv

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jaynujangad03/moodcam/internal/common"
)

// ProfileRepository stores display names as plain strings keyed by email.
type ProfileRepository struct {
	db *bolt.DB
}

func (r *ProfileRepository) SetName(ctx context.Context, email, name string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfiles).Put([]byte(email), []byte(name))
	})
	if err != nil {
		return fmt.Errorf("%w: put profile name: %v", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *ProfileRepository) GetName(ctx context.Context, email string) (string, error) {
	var name string
	err := r.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(bucketProfiles).Get([]byte(email)); data != nil {
			name = string(data)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: get profile name: %v", common.ErrStorageFailure, err)
	}
	return name, nil
}
