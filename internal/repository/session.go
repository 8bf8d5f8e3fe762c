package repository

import (
	"context"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error)
	// ListRecent returns the newest sessions first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error)
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
	// ActiveDays returns the distinct UTC dates with at least one session,
	// newest first, no older than since.
	ActiveDays(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}
