package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	before := time.Now().UnixMilli()
	e := NewEntry("2024-01-03", Mood{Emoji: "😊", Label: "Happy"}, "good day", "/tmp/selfie.jpg")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "2024-01-03", e.Date)
	assert.Equal(t, "Happy", e.Mood.Label)
	assert.GreaterOrEqual(t, e.Timestamp, before)

	day, ok := e.Day()
	require.True(t, ok)
	assert.Equal(t, 2024, day.Year())
}

func TestValidate(t *testing.T) {
	mood := Mood{Emoji: "😊", Label: "Happy"}

	tests := []struct {
		name    string
		entry   MoodEntry
		wantErr error
	}{
		{"valid", MoodEntry{Date: "2024-06-01", Mood: mood}, nil},
		{"valid with note", MoodEntry{Date: "2024-06-01", Mood: mood, Note: "fine"}, nil},
		{"bad date", MoodEntry{Date: "06/01/2024", Mood: mood}, ErrInvalidDate},
		{"no mood", MoodEntry{Date: "2024-06-01"}, ErrNoMood},
		{"note too long", MoodEntry{Date: "2024-06-01", Mood: mood, Note: strings.Repeat("a", 281)}, ErrNoteTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NoteAtLimit(t *testing.T) {
	e := MoodEntry{Date: "2024-06-01", Mood: Mood{Emoji: "😊", Label: "Happy"}, Note: strings.Repeat("x", 280)}
	assert.NoError(t, e.Validate())
}

func TestMoodByLabel(t *testing.T) {
	m, ok := MoodByLabel("Anxious")
	require.True(t, ok)
	assert.Equal(t, "😰", m.Emoji)

	_, ok = MoodByLabel("Nonexistent")
	assert.False(t, ok)
}

func TestAccentColor(t *testing.T) {
	c, ok := AccentColor("Happy")
	require.True(t, ok)
	assert.Equal(t, "#fffbe6", c)

	_, ok = AccentColor("Cool")
	assert.False(t, ok)
}

func TestCatalog_LabelsUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, m := range Catalog() {
		_, dup := seen[m.Label]
		require.False(t, dup, "duplicate label %s", m.Label)
		seen[m.Label] = struct{}{}
	}
	assert.Len(t, seen, 20)
}
