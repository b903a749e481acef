package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaynujangad03/moodcam/internal/models"
)

var (
	happy = models.Mood{Emoji: "😊", Label: "Happy"}
	sad   = models.Mood{Emoji: "😢", Label: "Sad"}
	angry = models.Mood{Emoji: "😡", Label: "Angry"}
)

func e(date string, mood models.Mood, ts int64) models.MoodEntry {
	return models.MoodEntry{ID: date, Date: date, Mood: mood, Timestamp: ts}
}

func TestMarkCalendar(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-01", happy, 1),
		e("2024-01-02", sad, 2),
	}
	marks := MarkCalendar(entries)
	require.Len(t, marks, 2)
	assert.Equal(t, happy, marks["2024-01-01"].Mood)
	assert.Equal(t, sad, marks["2024-01-02"].Mood)
}

func TestMarkCalendar_DuplicateDateLastInsertedWins(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-01", happy, 1),
		e("2024-01-01", sad, 2),
	}
	marks := MarkCalendar(entries)
	require.Len(t, marks, 1)
	assert.Equal(t, sad, marks["2024-01-01"].Mood)
}

func TestMarkCalendar_Empty(t *testing.T) {
	assert.Empty(t, MarkCalendar(nil))
}

func TestComputeStreak(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-03", happy, 3),
		e("2024-01-02", happy, 2),
		e("2024-01-01", sad, 1),
	}
	assert.Equal(t, Streak{Length: 2, Mood: "Happy"}, ComputeStreak(entries))
}

func TestComputeStreak_Empty(t *testing.T) {
	assert.Equal(t, Streak{Length: 0, Mood: ""}, ComputeStreak(nil))
}

func TestComputeStreak_SingleEntry(t *testing.T) {
	assert.Equal(t, Streak{Length: 1, Mood: "Sad"}, ComputeStreak([]models.MoodEntry{e("2024-05-10", sad, 1)}))
}

func TestComputeStreak_GapBreaksRun(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-05", happy, 3),
		e("2024-01-04", happy, 2),
		e("2024-01-01", happy, 1), // 3-day gap
	}
	assert.Equal(t, Streak{Length: 2, Mood: "Happy"}, ComputeStreak(entries))
}

func TestComputeStreak_MoodChangeBreaksRun(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-03", happy, 3),
		e("2024-01-02", sad, 2),
		e("2024-01-01", sad, 1),
	}
	assert.Equal(t, Streak{Length: 1, Mood: "Happy"}, ComputeStreak(entries))
}

func TestComputeStreak_UnsortedInput(t *testing.T) {
	// Stored order is insertion order; streak sorts internally.
	entries := []models.MoodEntry{
		e("2024-01-01", sad, 1),
		e("2024-01-03", happy, 3),
		e("2024-01-02", happy, 2),
	}
	assert.Equal(t, Streak{Length: 2, Mood: "Happy"}, ComputeStreak(entries))
}

func TestComputeStreak_DuplicateDateBreaksRun(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-02", happy, 3),
		e("2024-01-02", happy, 2),
		e("2024-01-01", happy, 1),
	}
	// Two entries on the same day: step is 0, not 1, so the run stops.
	assert.Equal(t, Streak{Length: 1, Mood: "Happy"}, ComputeStreak(entries))
}

func TestLastMood_ByDateNotInsertion(t *testing.T) {
	// A backfilled older entry is appended last; the newest date still wins.
	entries := []models.MoodEntry{
		e("2024-01-05", happy, 100),
		e("2024-01-02", sad, 200),
	}
	mood, ok := LastMood(entries)
	require.True(t, ok)
	assert.Equal(t, happy, mood)
}

func TestLastMood_SameDayLaterTimestampWins(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-01-05", happy, 100),
		e("2024-01-05", angry, 300),
	}
	mood, ok := LastMood(entries)
	require.True(t, ok)
	assert.Equal(t, angry, mood)
}

func TestLastMood_Empty(t *testing.T) {
	_, ok := LastMood(nil)
	assert.False(t, ok)
}

func TestSummarizeMonth(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-06-01", happy, 1),
		e("2024-06-03", happy, 2),
		e("2024-06-10", sad, 3),
		e("2024-06-21", happy, 4),
		e("2024-07-01", angry, 5), // different month
	}
	got := SummarizeMonth(entries, 2024, time.June)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, "Happy", got.MostFrequent)
	assert.Equal(t, map[string]int{"Happy": 3, "Sad": 1}, got.Frequency)
}

func TestSummarizeMonth_EmptyMonth(t *testing.T) {
	got := SummarizeMonth([]models.MoodEntry{e("2024-06-01", happy, 1)}, 2024, time.December)
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, "None", got.MostFrequent)
	assert.Empty(t, got.Frequency)
}

func TestSummarizeMonth_TieFirstSeenWins(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-06-02", sad, 1),
		e("2024-06-01", happy, 2),
		e("2024-06-03", happy, 3),
		e("2024-06-04", sad, 4),
	}
	got := SummarizeMonth(entries, 2024, time.June)
	assert.Equal(t, "Sad", got.MostFrequent, "first label to reach the max in insertion order")
}

func TestWeeklyCheckIn(t *testing.T) {
	today := time.Date(2024, 6, 7, 15, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		e("2024-06-07", happy, 1),
		e("2024-06-05", sad, 2),
		e("2024-06-05", happy, 3), // second entry same day: still one checked-in day
		e("2024-06-01", angry, 4),
		e("2024-05-20", happy, 5), // outside the window
	}
	got := WeeklyCheckIn(entries, today)
	assert.Equal(t, 3, got.CheckedInDays)
	assert.Equal(t, 4, got.MissedDays)
	assert.Equal(t, map[string]int{"Happy": 2, "Sad": 1, "Angry": 1}, got.Frequency)
}

func TestWeeklyCheckIn_NoEntries(t *testing.T) {
	got := WeeklyCheckIn(nil, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, got.CheckedInDays)
	assert.Equal(t, 7, got.MissedDays)
}

func TestTrendDistribution(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-06-01", happy, 1),
		e("2024-06-02", happy, 2),
		e("2024-06-03", sad, 3),
		e("2024-06-04", angry, 4),
	}
	assert.Equal(t, map[string]int{"😊": 2, "😢": 1, "😡": 1}, TrendDistribution(entries))

	pct := TrendPercentages(entries)
	assert.InDelta(t, 50.0, pct["😊"], 0.001)
	assert.InDelta(t, 25.0, pct["😢"], 0.001)
}

func TestTrendPercentages_Empty(t *testing.T) {
	assert.Empty(t, TrendPercentages(nil))
}

func TestMonthEntries_FilterAndSortDateDesc(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-06-01", happy, 1),
		e("2024-07-04", sad, 2),
		e("2024-06-15", angry, 3),
		e("2024-06-15", sad, 4),
	}
	got := MonthEntries(entries, 2024, time.June)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-15", got[0].Date)
	assert.Equal(t, angry, got[0].Mood, "stored order kept among same-day entries")
	assert.Equal(t, sad, got[1].Mood)
	assert.Equal(t, "2024-06-01", got[2].Date)
}

func TestAggregationsAreIdempotent(t *testing.T) {
	entries := []models.MoodEntry{
		e("2024-06-01", happy, 1),
		e("2024-06-02", sad, 2),
		e("2024-06-02", happy, 3),
	}
	assert.Equal(t, MarkCalendar(entries), MarkCalendar(entries))
	assert.Equal(t, ComputeStreak(entries), ComputeStreak(entries))
	assert.Equal(t, SummarizeMonth(entries, 2024, time.June), SummarizeMonth(entries, 2024, time.June))
	assert.Equal(t, TrendDistribution(entries), TrendDistribution(entries))

	// Input order is untouched by the sorting views.
	_ = MonthEntries(entries, 2024, time.June)
	_ = ComputeStreak(entries)
	assert.Equal(t, "2024-06-01", entries[0].Date)
	assert.Equal(t, int64(2), entries[1].Timestamp)
}
