package domain

import (
	"errors"
	"time"
)

var ErrSettingsNotFound = errors.New("settings not found")

type ReminderFrequency string

const (
	ReminderDaily        ReminderFrequency = "daily"
	ReminderThreePerWeek ReminderFrequency = "3x/week"
	ReminderWeekly       ReminderFrequency = "weekly"
)

// CronExpr returns the standard cron expression reminders of this frequency fire on.
func (f ReminderFrequency) CronExpr() (string, bool) {
	switch f {
	case ReminderDaily:
		return "0 8 * * *", true
	case ReminderThreePerWeek:
		return "0 8 * * 1,3,5", true
	case ReminderWeekly:
		return "0 8 * * 1", true
	}
	return "", false
}

// Languages supported by the settings page.
var Languages = map[string]string{
	"en": "English",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
}

type Settings struct {
	UserID            string            `json:"-"`
	Notifications     bool              `json:"notifications"`
	EmailReminders    bool              `json:"email_reminders"`
	ReminderFrequency ReminderFrequency `json:"reminder_frequency"`
	WeeklyGoal        int               `json:"weekly_goal"`
	DailyCalorieGoal  int               `json:"daily_calorie_goal"`
	Language          string            `json:"language"`
	NextReminderAt    *time.Time        `json:"next_reminder_at,omitempty"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// DefaultSettings mirrors the values a fresh account starts with.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:            userID,
		Notifications:     true,
		EmailReminders:    true,
		ReminderFrequency: ReminderDaily,
		WeeklyGoal:        5,
		DailyCalorieGoal:  2000,
		Language:          "en",
	}
}

// RemindersEnabled reports whether reminder emails should be scheduled.
func (s *Settings) RemindersEnabled() bool {
	return s.Notifications && s.EmailReminders
}

// Reminder is a due reminder claimed by the dispatcher.
type Reminder struct {
	UserID    string
	Email     string
	FullName  string
	Frequency ReminderFrequency
	DueAt     time.Time
}
