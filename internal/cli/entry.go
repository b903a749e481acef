package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jaynujangad03/moodcam/internal/journal"
	"github.com/jaynujangad03/moodcam/internal/models"
	"github.com/jaynujangad03/moodcam/internal/quotes"
)

// nowFn is a test seam for the current time.
var nowFn = time.Now

// pickMood shows the numbered catalog and accepts either a number or a label.
func (a *App) pickMood() (models.Mood, error) {
	catalog := models.Catalog()
	for i, m := range catalog {
		printlnFn(fmt.Sprintf("%2d. %s %s", i+1, m.Emoji, m.Label))
	}

	raw, err := getSimpleText(a.reader, "How are you feeling? (number or label)", os.Stdout)
	if err != nil {
		return models.Mood{}, err
	}
	if n, convErr := strconv.Atoi(raw); convErr == nil && n >= 1 && n <= len(catalog) {
		return catalog[n-1], nil
	}
	if m, ok := models.MoodByLabel(raw); ok {
		return m, nil
	}

	printlnFn("Unknown mood:", raw)
	return models.Mood{}, fmt.Errorf("unknown mood %q", raw)
}

// AddEntry logs a mood for today: mood pick, optional note and photo path.
// A successful save cancels the pending evening nudge and prints an
// affirmation.
func (a *App) AddEntry(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	mood, err := a.pickMood()
	if err != nil {
		return err
	}

	note, err := getSimpleText(a.reader,
		fmt.Sprintf("Add a note (optional, max %d chars)", models.MaxNoteLength), os.Stdout)
	if err != nil {
		return err
	}
	photo, err := getSimpleText(a.reader, "Photo path (optional)", os.Stdout)
	if err != nil {
		return err
	}

	entry := models.NewEntry(nowFn().Format(models.DayFormat), mood, note, photo)
	if err := a.journal.Append(ctx, email, entry); err != nil {
		if errors.Is(err, models.ErrNoteTooLong) {
			printlnFn("Note is too long, the limit is", models.MaxNoteLength, "characters.")
		} else {
			printlnFn("Could not save the entry.")
		}
		return err
	}

	a.nudges.CancelAll()

	printlnFn(fmt.Sprintf("Saved %s %s for %s.", mood.Emoji, mood.Label, entry.Date))
	printlnFn("💡 " + quotes.Random())
	return nil
}

// Today shows today's entries plus the streak and last-mood headline the
// home screen leads with.
func (a *App) Today(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	entries, err := a.journal.ListAll(ctx, email)
	if err != nil {
		printlnFn("Could not load entries.")
		return err
	}

	today := nowFn().Format(models.DayFormat)
	count := 0
	for _, e := range entries {
		if e.Date != today {
			continue
		}
		count++
		printEntry(e)
	}
	if count == 0 {
		printlnFn("No entry for today yet. Type 'add' to log your mood.")
	}

	if mood, ok := journal.LastMood(entries); ok {
		printlnFn("Last mood:", mood.Emoji, mood.Label)
	}
	if streak := journal.ComputeStreak(entries); streak.Length > 1 {
		printlnFn(fmt.Sprintf("🔥 %d-day %s streak!", streak.Length, streak.Mood))
	}
	return nil
}

func printEntry(e models.MoodEntry) {
	line := fmt.Sprintf("%s  %s %s", e.Date, e.Mood.Emoji, e.Mood.Label)
	if e.Note != "" {
		line += `  "` + e.Note + `"`
	}
	if e.Photo != "" {
		line += "  [📷 " + e.Photo + "]"
	}
	printlnFn(line)
}
