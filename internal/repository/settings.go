package repository

import (
	"context"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
	// Atomic: claim due reminders and advance next_reminder_at in one tx.
	// computeNext returning nil stops further reminders for that user.
	ClaimDueReminders(ctx context.Context, limit int, computeNext func(*domain.Reminder) *time.Time) ([]*domain.Reminder, error)
}
