package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jaynujangad03/moodcam/internal/journal"
	"github.com/jaynujangad03/moodcam/internal/models"
)

func (a *App) loadEntries(ctx context.Context) (string, []models.MoodEntry, error) {
	email, err := a.currentEmail()
	if err != nil {
		return "", nil, err
	}
	entries, err := a.journal.ListAll(ctx, email)
	if err != nil {
		printlnFn("Could not load entries.")
		return "", nil, err
	}
	return email, entries, nil
}

// askMonth reads an optional "YYYY-MM" and falls back to the current month.
func (a *App) askMonth() (int, time.Month, error) {
	raw, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for current)", os.Stdout)
	if err != nil {
		return 0, 0, err
	}
	if raw == "" {
		now := nowFn()
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		printlnFn("Not a valid month:", raw)
		return 0, 0, err
	}
	return parsed.Year(), parsed.Month(), nil
}

// Calendar prints one mood mark per logged date, oldest first.
func (a *App) Calendar(ctx context.Context) error {
	_, entries, err := a.loadEntries(ctx)
	if err != nil {
		return err
	}

	marks := journal.MarkCalendar(entries)
	if len(marks) == 0 {
		printlnFn("Nothing logged yet.")
		return nil
	}

	dates := make([]string, 0, len(marks))
	for d := range marks {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		printlnFn(d, marks[d].Mood.Emoji, marks[d].Mood.Label)
	}
	return nil
}

// History prints one month of entries, newest first.
func (a *App) History(ctx context.Context) error {
	_, entries, err := a.loadEntries(ctx)
	if err != nil {
		return err
	}
	year, month, err := a.askMonth()
	if err != nil {
		return err
	}

	monthly := journal.MonthEntries(entries, year, month)
	if len(monthly) == 0 {
		printlnFn("No entries for that month.")
		return nil
	}
	for _, e := range monthly {
		printEntry(e)
	}
	return nil
}

// Gallery prints the entries that carry a photo, newest month view first.
func (a *App) Gallery(ctx context.Context) error {
	_, entries, err := a.loadEntries(ctx)
	if err != nil {
		return err
	}
	year, month, err := a.askMonth()
	if err != nil {
		return err
	}

	count := 0
	for _, e := range journal.MonthEntries(entries, year, month) {
		if e.Photo == "" {
			continue
		}
		count++
		printEntry(e)
	}
	if count == 0 {
		printlnFn("No photos for that month.")
	}
	return nil
}

// Summary prints the monthly totals and the most frequent mood.
func (a *App) Summary(ctx context.Context) error {
	_, entries, err := a.loadEntries(ctx)
	if err != nil {
		return err
	}
	year, month, err := a.askMonth()
	if err != nil {
		return err
	}

	s := journal.SummarizeMonth(entries, year, month)
	printlnFn(fmt.Sprintf("%s %d: %d entries, most frequent mood: %s", month, year, s.Total, s.MostFrequent))

	labels := make([]string, 0, len(s.Frequency))
	for label := range s.Frequency {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		printlnFn(fmt.Sprintf("  %-12s %d", label, s.Frequency[label]))
	}
	return nil
}

// Weekly prints the 7-day check-in stats.
func (a *App) Weekly(ctx context.Context) error {
	_, entries, err := a.loadEntries(ctx)
	if err != nil {
		return err
	}

	c := journal.WeeklyCheckIn(entries, nowFn())
	printlnFn(fmt.Sprintf("Last 7 days: checked in %d, missed %d", c.CheckedInDays, c.MissedDays))

	labels := make([]string, 0, len(c.Frequency))
	for label := range c.Frequency {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		printlnFn(fmt.Sprintf("  %-12s %d", label, c.Frequency[label]))
	}
	return nil
}

// Trends prints the whole-journal mood distribution with percentages.
func (a *App) Trends(ctx context.Context) error {
	_, entries, err := a.loadEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printlnFn("Nothing logged yet.")
		return nil
	}

	counts := journal.TrendDistribution(entries)
	pct := journal.TrendPercentages(entries)

	emojis := make([]string, 0, len(counts))
	for emoji := range counts {
		emojis = append(emojis, emoji)
	}
	sort.Slice(emojis, func(i, j int) bool {
		if counts[emojis[i]] != counts[emojis[j]] {
			return counts[emojis[i]] > counts[emojis[j]]
		}
		return emojis[i] < emojis[j]
	})
	for _, emoji := range emojis {
		printlnFn(fmt.Sprintf("  %s  %3d  %5.1f%%", emoji, counts[emoji], pct[emoji]))
	}
	return nil
}
