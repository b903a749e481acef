// Package models defines the data types persisted by the MoodCam core:
// users, sessions, moods and mood-journal entries.
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DayFormat is the zero-padded ISO calendar-day layout used for entry dates.
// Lexicographic order on these strings equals chronological day order.
const DayFormat = "2006-01-02"

// MaxNoteLength is the note budget enforced by the capture flow.
const MaxNoteLength = 280

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrNoteTooLong = errors.New("note exceeds 280 characters")
	ErrNoMood      = errors.New("mood is required")
)

// MoodEntry is one mood-journal record. Entries belong to exactly one user
// (via the owner's email partition), are append-only, never updated, and are
// only removed by a bulk clear. Multiple entries per calendar day are
// allowed. JSON field names match the exported document format.
type MoodEntry struct {
	// ID is a globally unique identifier assigned at capture time.
	ID string `json:"id"`

	// Date is the calendar day of the entry in DayFormat.
	Date string `json:"date"`

	// Mood is the tag chosen from the capture catalog.
	Mood Mood `json:"mood"`

	// Note is optional free text, at most MaxNoteLength characters.
	Note string `json:"note"`

	// Photo is a local-file reference to the captured selfie.
	Photo string `json:"photo"`

	// Timestamp is the creation instant in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// NewEntry builds an entry for the given day with a fresh ID and the current
// creation instant.
func NewEntry(day string, mood Mood, note, photo string) *MoodEntry {
	return &MoodEntry{
		ID:        uuid.NewString(),
		Date:      day,
		Mood:      mood,
		Note:      note,
		Photo:     photo,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Day parses the entry date. The second result is false when the stored
// string is not a valid calendar day.
func (e *MoodEntry) Day() (time.Time, bool) {
	t, err := time.Parse(DayFormat, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Time returns the creation instant.
func (e *MoodEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Validate checks the capture-time constraints: a well-formed date, a
// non-empty mood label and the note budget. Mood catalog membership is
// deliberately not checked here.
func (e *MoodEntry) Validate() error {
	if _, ok := e.Day(); !ok {
		return ErrInvalidDate
	}
	if e.Mood.Label == "" {
		return ErrNoMood
	}
	if len([]rune(e.Note)) > MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}
