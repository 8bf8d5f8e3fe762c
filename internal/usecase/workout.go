package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/events"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
	"github.com/ErlanBelekov/fittrack/internal/repository"
)

const (
	defaultSessionLimit = 20
	maxSessionLimit     = 100
)

// WorkoutCatalog is the part of *catalog.Catalog the usecase needs.
type WorkoutCatalog interface {
	Workout(id string) (domain.Workout, error)
}

type WorkoutUsecase struct {
	catalog   WorkoutCatalog
	sessions  repository.SessionRepository
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewWorkoutUsecase(catalog WorkoutCatalog, sessions repository.SessionRepository, publisher events.Publisher, logger *slog.Logger) *WorkoutUsecase {
	return &WorkoutUsecase{
		catalog:   catalog,
		sessions:  sessions,
		publisher: publisher,
		logger:    logger.With("component", "workout_usecase"),
		now:       time.Now,
	}
}

type LogSessionInput struct {
	WorkoutID       string
	DurationMin     int
	HeartRate       int
	BodyTemperature float64
	Notes           string
	// PerformedAt defaults to now.
	PerformedAt *time.Time
}

// LogSession records a performed workout and publishes workout.logged.
// A publish failure is logged but does not fail the request.
func (u *WorkoutUsecase) LogSession(ctx context.Context, userID string, in LogSessionInput) (*domain.WorkoutSession, error) {
	w, err := u.catalog.Workout(in.WorkoutID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("lookup workout: %w", err)
	}

	performedAt := u.now().UTC()
	if in.PerformedAt != nil {
		performedAt = in.PerformedAt.UTC()
	}

	s, err := u.sessions.Create(ctx, &domain.WorkoutSession{
		UserID:          userID,
		WorkoutID:       w.ID,
		WorkoutName:     w.Name,
		DurationMin:     in.DurationMin,
		HeartRate:       in.HeartRate,
		BodyTemperature: in.BodyTemperature,
		Notes:           in.Notes,
		PerformedAt:     performedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	metrics.WorkoutsLoggedTotal.WithLabelValues(w.Category).Inc()

	if err := u.publisher.WorkoutLogged(ctx, s); err != nil {
		metrics.EventPublishFailuresTotal.Inc()
		u.logger.WarnContext(ctx, "publish workout logged", "session_id", s.ID, "error", err)
	}
	return s, nil
}

// ListSessions returns the newest sessions first. limit is clamped to
// [1, 100] and defaults to 20.
func (u *WorkoutUsecase) ListSessions(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error) {
	switch {
	case limit <= 0:
		limit = defaultSessionLimit
	case limit > maxSessionLimit:
		limit = maxSessionLimit
	}
	sessions, err := u.sessions.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
