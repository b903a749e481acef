package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaynujangad03/moodcam/internal/logging"
)

func TestScheduleAt_Fires(t *testing.T) {
	fired := make(chan string, 1)
	s := NewScheduler(func(msg string) { fired <- msg }, logging.NewNop())

	ok := s.ScheduleAt(time.Now().Add(20*time.Millisecond), "check in")
	require.True(t, ok)

	select {
	case msg := <-fired:
		assert.Equal(t, "check in", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("reminder did not fire")
	}
}

func TestScheduleAt_PastInstantIgnored(t *testing.T) {
	s := NewScheduler(func(string) {}, logging.NewNop())

	ok := s.ScheduleAt(time.Now().Add(-time.Minute), "too late")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Pending())
}

func TestCancelAll(t *testing.T) {
	fired := make(chan string, 2)
	s := NewScheduler(func(msg string) { fired <- msg }, logging.NewNop())

	s.ScheduleAt(time.Now().Add(time.Hour), "one")
	s.ScheduleDaily(23, 59, "two")
	require.Equal(t, 2, s.Pending())

	s.CancelAll()

	// Goroutines unwind asynchronously; the pending map is cleared at once.
	assert.Equal(t, 0, s.Pending())
	select {
	case msg := <-fired:
		t.Fatalf("cancelled reminder fired: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNextDaily(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 7, 20, 0, 0, 0, loc)

	next := NextDaily(now, 21, 0)
	assert.Equal(t, time.Date(2024, 6, 7, 21, 0, 0, 0, loc), next, "later today")

	next = NextDaily(now, 8, 30)
	assert.Equal(t, time.Date(2024, 6, 8, 8, 30, 0, 0, loc), next, "already past, rolls to tomorrow")

	next = NextDaily(time.Date(2024, 6, 7, 21, 0, 0, 0, loc), 21, 0)
	assert.Equal(t, time.Date(2024, 6, 8, 21, 0, 0, 0, loc), next, "exact boundary rolls over")
}
