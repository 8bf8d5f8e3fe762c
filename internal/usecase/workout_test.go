package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
)

var running = domain.Workout{ID: "running", Name: "Running", Category: "Cardio", TypicalDuration: 30}

func TestLogSession_SavesAndPublishes(t *testing.T) {
	var saved *domain.WorkoutSession
	repo := &fakeSessionRepo{
		create: func(_ context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error) {
			saved = s
			out := *s
			out.ID = "session-1"
			return &out, nil
		},
	}
	pub := &fakePublisher{}
	uc := usecase.NewWorkoutUsecase(fakeCatalog{"running": running}, repo, pub, slog.Default())

	s, err := uc.LogSession(context.Background(), "user-1", usecase.LogSessionInput{
		WorkoutID: "running", DurationMin: 35, HeartRate: 150, BodyTemperature: 99.1, Notes: "hills",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.WorkoutName != "Running" || saved.UserID != "user-1" {
		t.Errorf("unexpected saved session: %+v", saved)
	}
	if saved.PerformedAt.IsZero() {
		t.Error("performed_at should default to now")
	}
	if len(pub.published) != 1 || pub.published[0].ID != s.ID {
		t.Errorf("expected session to be published, got %+v", pub.published)
	}
}

func TestLogSession_UnknownWorkout(t *testing.T) {
	repo := &fakeSessionRepo{
		create: func(context.Context, *domain.WorkoutSession) (*domain.WorkoutSession, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		},
	}
	uc := usecase.NewWorkoutUsecase(fakeCatalog{}, repo, &fakePublisher{}, slog.Default())

	_, err := uc.LogSession(context.Background(), "user-1", usecase.LogSessionInput{WorkoutID: "nope"})
	if !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestLogSession_PublishFailureIsNotFatal(t *testing.T) {
	repo := &fakeSessionRepo{
		create: func(_ context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error) { return s, nil },
	}
	uc := usecase.NewWorkoutUsecase(fakeCatalog{"running": running}, repo,
		&fakePublisher{err: errors.New("broker down")}, slog.Default())

	performed := time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC)
	s, err := uc.LogSession(context.Background(), "user-1", usecase.LogSessionInput{
		WorkoutID: "running", DurationMin: 30, HeartRate: 120, BodyTemperature: 98.6, PerformedAt: &performed,
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !s.PerformedAt.Equal(performed) {
		t.Errorf("performed_at = %v, want %v", s.PerformedAt, performed)
	}
}

func TestListSessions_ClampsLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 20},
		{-3, 20},
		{7, 7},
		{500, 100},
	}
	for _, tt := range tests {
		var got int
		repo := &fakeSessionRepo{
			listRecent: func(_ context.Context, _ string, limit int) ([]*domain.WorkoutSession, error) {
				got = limit
				return nil, nil
			},
		}
		uc := usecase.NewWorkoutUsecase(fakeCatalog{}, repo, &fakePublisher{}, slog.Default())
		if _, err := uc.ListSessions(context.Background(), "user-1", tt.in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("limit %d: repository got %d, want %d", tt.in, got, tt.want)
		}
	}
}
