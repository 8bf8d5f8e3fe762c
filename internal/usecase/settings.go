package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/reminder"
	"github.com/ErlanBelekov/fittrack/internal/repository"
)

type SettingsUsecase struct {
	settings repository.SettingsRepository
	logger   *slog.Logger
	now      func() time.Time
}

func NewSettingsUsecase(settings repository.SettingsRepository, logger *slog.Logger) *SettingsUsecase {
	return &SettingsUsecase{
		settings: settings,
		logger:   logger.With("component", "settings_usecase"),
		now:      time.Now,
	}
}

type UpdateSettingsInput struct {
	Notifications     bool
	EmailReminders    bool
	ReminderFrequency domain.ReminderFrequency
	WeeklyGoal        int
	DailyCalorieGoal  int
	Language          string
}

func (u *SettingsUsecase) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	s, err := u.settings.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Update saves the settings and reschedules the next reminder from now.
func (u *SettingsUsecase) Update(ctx context.Context, userID string, in UpdateSettingsInput) (*domain.Settings, error) {
	s := &domain.Settings{
		UserID:            userID,
		Notifications:     in.Notifications,
		EmailReminders:    in.EmailReminders,
		ReminderFrequency: in.ReminderFrequency,
		WeeklyGoal:        in.WeeklyGoal,
		DailyCalorieGoal:  in.DailyCalorieGoal,
		Language:          in.Language,
	}
	s.NextReminderAt = reminder.NextFor(s, u.now().UTC())

	updated, err := u.settings.Update(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	u.logger.InfoContext(ctx, "settings updated", "reminders", s.RemindersEnabled(), "frequency", s.ReminderFrequency)
	return updated, nil
}
