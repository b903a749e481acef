// Package journal implements the mood-journal core: the entry service over a
// storage backend, the JSON export, and the aggregation functions behind the
// calendar, summary, check-in and trend views.
package journal

import (
	"sort"
	"time"

	"github.com/jaynujangad03/moodcam/internal/models"
)

// Everything in this file is a pure function over a materialized entry
// slice: no I/O, no side effects, deterministic for a given input.

// Mark decorates one calendar date that has at least one entry.
type Mark struct {
	Mood models.Mood
}

// MarkCalendar produces one mark per date. When several entries share a
// date, the last-inserted entry wins: the map is built in stored order and
// later entries overwrite earlier ones.
func MarkCalendar(entries []models.MoodEntry) map[string]Mark {
	marks := make(map[string]Mark, len(entries))
	for _, e := range entries {
		marks[e.Date] = Mark{Mood: e.Mood}
	}
	return marks
}

// Streak is a run of consecutive calendar days with an unchanged mood label,
// counted backward from the most recent entry date.
type Streak struct {
	Length int
	Mood   string
}

// ComputeStreak sorts by date descending and counts exact 1-day steps with
// the same label. A gap of more than one day, a repeated date, or a mood
// change ends the run. Empty input yields {0, ""}.
func ComputeStreak(entries []models.MoodEntry) Streak {
	if len(entries) == 0 {
		return Streak{}
	}

	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	lastDay, ok := sorted[0].Day()
	if !ok {
		return Streak{}
	}
	label := sorted[0].Mood.Label
	length := 1

	for _, e := range sorted[1:] {
		day, ok := e.Day()
		if !ok {
			break
		}
		diff := int(lastDay.Sub(day).Hours() / 24)
		if diff != 1 || e.Mood.Label != label {
			break
		}
		length++
		lastDay = day
	}
	return Streak{Length: length, Mood: label}
}

// LastMood returns the mood of the most recent entry. Recency is the
// canonical (date, timestamp) ordering; among full ties the later-stored
// entry wins. The original app read the last element in stored order here,
// which disagreed with every date-sorted view whenever an entry was
// backfilled; all consumers now share this one definition.
func LastMood(entries []models.MoodEntry) (models.Mood, bool) {
	if len(entries) == 0 {
		return models.Mood{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Date > best.Date || (e.Date == best.Date && e.Timestamp >= best.Timestamp) {
			best = e
		}
	}
	return best.Mood, true
}

// MonthlySummary aggregates one calendar month.
type MonthlySummary struct {
	Total        int
	Frequency    map[string]int
	MostFrequent string
}

// SummarizeMonth tallies the entries of the given year/month by mood label.
// MostFrequent is the first label to reach the maximum while iterating
// labels in first-seen (insertion) order; "None" for an empty month.
func SummarizeMonth(entries []models.MoodEntry, year int, month time.Month) MonthlySummary {
	freq := map[string]int{}
	var order []string
	total := 0

	for _, e := range entries {
		day, ok := e.Day()
		if !ok || day.Year() != year || day.Month() != month {
			continue
		}
		total++
		if _, seen := freq[e.Mood.Label]; !seen {
			order = append(order, e.Mood.Label)
		}
		freq[e.Mood.Label]++
	}

	most := "None"
	max := 0
	for _, label := range order {
		if freq[label] > max {
			max = freq[label]
			most = label
		}
	}
	return MonthlySummary{Total: total, Frequency: freq, MostFrequent: most}
}

// CheckIn reports attendance over the 7 calendar days ending today.
type CheckIn struct {
	CheckedInDays int
	MissedDays    int
	Frequency     map[string]int
}

// WeeklyCheckIn checks, for each of the 7 days ending on today, whether at
// least one entry exists for that date, and tallies mood labels inside the
// window.
func WeeklyCheckIn(entries []models.MoodEntry, today time.Time) CheckIn {
	window := make(map[string]bool, 7)
	start := today.AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		window[start.AddDate(0, 0, i).Format(models.DayFormat)] = false
	}

	freq := map[string]int{}
	for _, e := range entries {
		if _, inWindow := window[e.Date]; !inWindow {
			continue
		}
		window[e.Date] = true
		freq[e.Mood.Label]++
	}

	checked := 0
	for _, hasEntry := range window {
		if hasEntry {
			checked++
		}
	}
	return CheckIn{CheckedInDays: checked, MissedDays: 7 - checked, Frequency: freq}
}

// TrendDistribution counts entries per mood emoji over the whole journal.
func TrendDistribution(entries []models.MoodEntry) map[string]int {
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Mood.Emoji]++
	}
	return counts
}

// TrendPercentages converts the distribution to percent-of-total per emoji.
func TrendPercentages(entries []models.MoodEntry) map[string]float64 {
	counts := TrendDistribution(entries)
	total := len(entries)
	percentages := make(map[string]float64, len(counts))
	if total == 0 {
		return percentages
	}
	for emoji, n := range counts {
		percentages[emoji] = float64(n) / float64(total) * 100
	}
	return percentages
}

// MonthEntries filters to one calendar month and sorts date-descending,
// keeping stored order among same-day entries. This backs the history and
// gallery timelines.
func MonthEntries(entries []models.MoodEntry, year int, month time.Month) []models.MoodEntry {
	filtered := []models.MoodEntry{}
	for _, e := range entries {
		day, ok := e.Day()
		if !ok || day.Year() != year || day.Month() != month {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	return filtered
}
