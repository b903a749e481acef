package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jaynujangad03/moodcam/internal/models"
	"github.com/jaynujangad03/moodcam/internal/reminder"
)

// Remind arms the evening nudge for today (only while it is still ahead and
// no entry was logged yet) and makes sure the daily reminder is running.
func (a *App) Remind(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	now := nowFn()
	logged, err := a.journal.HasEntryForDay(ctx, email, now.Format(models.DayFormat))
	if err != nil {
		printlnFn("Could not check today's entries.")
		return err
	}

	if logged {
		printlnFn("Already logged today, no nudge needed.")
	} else {
		at := time.Date(now.Year(), now.Month(), now.Day(),
			a.config.NudgeHour, a.config.NudgeMinute, 0, 0, now.Location())
		a.nudges.CancelAll()
		if a.nudges.ScheduleAt(at, "You haven't logged your mood today. How are you feeling?") {
			printlnFn(fmt.Sprintf("Nudge armed for %02d:%02d.", a.config.NudgeHour, a.config.NudgeMinute))
		} else {
			printlnFn("Tonight's nudge time has already passed.")
		}
	}

	if a.daily.Pending() == 0 {
		a.daily.ScheduleDaily(a.config.DailyReminderHour, a.config.DailyReminderMinute,
			"Time to check in with MoodCam!")
	}
	next := reminder.NextDaily(now, a.config.DailyReminderHour, a.config.DailyReminderMinute)
	printlnFn("Daily reminder runs at", next.Format("15:04"))
	return nil
}
