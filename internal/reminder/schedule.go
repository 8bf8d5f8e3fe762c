package reminder

import (
	"fmt"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/robfig/cron/v3"
)

// NextAfter returns the first reminder time for freq strictly after t.
func NextAfter(freq domain.ReminderFrequency, t time.Time) (time.Time, error) {
	expr, ok := freq.CronExpr()
	if !ok {
		return time.Time{}, fmt.Errorf("unknown reminder frequency %q", freq)
	}
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cron %q: %w", expr, err)
	}
	return sched.Next(t), nil
}

// NextFor returns when s should next be reminded, or nil when reminders are
// switched off or the frequency is unknown.
func NextFor(s *domain.Settings, now time.Time) *time.Time {
	if !s.RemindersEnabled() {
		return nil
	}
	next, err := NextAfter(s.ReminderFrequency, now)
	if err != nil {
		return nil
	}
	return &next
}
