// Package auth implements the credential store: registration and login over
// a storage.UserRepository. Passwords are stored as argon2id hashes; the
// original app's plaintext comparison is a known defect and is not
// reproduced.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/logging"
	"github.com/jaynujangad03/moodcam/internal/models"
	"github.com/jaynujangad03/moodcam/internal/storage"
)

type Service struct {
	store  storage.Store
	logger logging.Logger
}

func NewService(store storage.Store, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Initialize idempotently ensures the backing schema exists. It creates
// schema only and never mutates data; calling it repeatedly is safe.
func (s *Service) Initialize(ctx context.Context) error {
	return s.store.Init(ctx)
}

// Register durably persists a new account before returning. Returns
// common.ErrDuplicateEmail when the email is taken, common.ErrStorageFailure
// on any other backing error.
func (s *Service) Register(ctx context.Context, firstName, email, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return common.ErrStorageFailure
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		Email:        email,
		PasswordHash: hash,
	}
	return s.store.Users().Create(ctx, user)
}

// Authenticate looks the account up by email and verifies the password.
// The second result is false on no-match and on any lookup failure; a missing
// user is a normal empty result, never an error to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Session, bool) {
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "user lookup failed", "error", err)
		}
		return nil, false
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, false
	}
	return models.NewSession(user), true
}
