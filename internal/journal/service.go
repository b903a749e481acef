package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaynujangad03/moodcam/internal/common"
	"github.com/jaynujangad03/moodcam/internal/logging"
	"github.com/jaynujangad03/moodcam/internal/models"
	"github.com/jaynujangad03/moodcam/internal/storage"
)

// ExportFileName is the document offered to the platform share facility.
const ExportFileName = "moodcam-export.json"

// Service is the entry store: validated appends, reads and bulk clears of a
// user's partition, plus the shareable JSON export.
type Service struct {
	store  storage.Store
	logger logging.Logger
}

func NewService(store storage.Store, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Append validates and persists one entry in the owner's partition.
func (s *Service) Append(ctx context.Context, ownerEmail string, entry *models.MoodEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := s.store.Entries().Append(ctx, ownerEmail, entry); err != nil {
		return err
	}
	s.logger.Info(ctx, "entry saved", "owner", ownerEmail, "date", entry.Date, "mood", entry.Mood.Label)
	return nil
}

// ListAll returns the owner's entries in insertion order.
func (s *Service) ListAll(ctx context.Context, ownerEmail string) ([]models.MoodEntry, error) {
	return s.store.Entries().ListAll(ctx, ownerEmail)
}

// ClearAll removes every entry of the owner.
func (s *Service) ClearAll(ctx context.Context, ownerEmail string) error {
	if err := s.store.Entries().ClearAll(ctx, ownerEmail); err != nil {
		return err
	}
	s.logger.Info(ctx, "entries cleared", "owner", ownerEmail)
	return nil
}

// HasEntryForDay reports whether the owner already logged the given calendar
// day. The capture flow uses it to suppress the daily reminder.
func (s *Service) HasEntryForDay(ctx context.Context, ownerEmail, day string) (bool, error) {
	entries, err := s.store.Entries().ListAll(ctx, ownerEmail)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.Date == day {
			return true, nil
		}
	}
	return false, nil
}

// Export serializes the owner's full entry list as one JSON document.
// Returns common.ErrNoData when there is nothing to export.
func (s *Service) Export(ctx context.Context, ownerEmail string) ([]byte, error) {
	entries, err := s.store.Entries().ListAll(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, common.ErrNoData
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExport, err)
	}
	return data, nil
}

// ExportToFile writes the export document into dir and returns its path,
// ready to hand to the platform's share facility.
func (s *Service) ExportToFile(ctx context.Context, ownerEmail, dir string) (string, error) {
	data, err := s.Export(ctx, ownerEmail)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrExport, err)
	}
	s.logger.Info(ctx, "journal exported", "owner", ownerEmail, "path", path)
	return path, nil
}
