// Package reminder schedules local check-in reminders. Delivery is a
// callback: the platform notification surface is a thin wrapper outside the
// core, so the scheduler only decides when a message fires.
package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/jaynujangad03/moodcam/internal/logging"
)

// Notifier receives a reminder message when it fires.
type Notifier func(message string)

// Scheduler owns the pending reminders of one device. All reminders are
// in-memory; they do not survive a restart, matching the original app which
// re-schedules on every screen visit.
type Scheduler struct {
	mu      sync.Mutex
	notify  Notifier
	logger  logging.Logger
	nextID  int
	pending map[int]chan struct{}
}

func NewScheduler(notify Notifier, logger logging.Logger) *Scheduler {
	return &Scheduler{
		notify:  notify,
		logger:  logger,
		pending: make(map[int]chan struct{}),
	}
}

func (s *Scheduler) add() (int, chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	stop := make(chan struct{})
	s.pending[s.nextID] = stop
	return s.nextID, stop
}

func (s *Scheduler) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

// ScheduleAt arms a one-shot reminder. Instants in the past are ignored and
// the method reports false, the same way the capture flow only arms the
// evening nudge while it is still ahead.
func (s *Scheduler) ScheduleAt(t time.Time, message string) bool {
	d := time.Until(t)
	if d <= 0 {
		return false
	}

	id, stop := s.add()
	timer := time.NewTimer(d)
	go func() {
		defer s.remove(id)
		select {
		case <-timer.C:
			s.notify(message)
		case <-stop:
			timer.Stop()
		}
	}()

	s.logger.Info(context.Background(), "reminder scheduled", "at", t.Format(time.RFC3339))
	return true
}

// ScheduleDaily arms a repeating reminder at hour:minute local time, like
// the settings screen's 21:00 daily reminder.
func (s *Scheduler) ScheduleDaily(hour, minute int, message string) {
	id, stop := s.add()
	go func() {
		defer s.remove(id)
		for {
			timer := time.NewTimer(time.Until(NextDaily(time.Now(), hour, minute)))
			select {
			case <-timer.C:
				s.notify(message)
			case <-stop:
				timer.Stop()
				return
			}
		}
	}()

	s.logger.Info(context.Background(), "daily reminder scheduled", "hour", hour, "minute", minute)
}

// CancelAll disarms every pending reminder.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, stop := range s.pending {
		close(stop)
		delete(s.pending, id)
	}
}

// Pending returns the number of armed reminders.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// NextDaily returns the first hour:minute occurrence strictly after now.
func NextDaily(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
