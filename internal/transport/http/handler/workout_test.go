package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ErlanBelekov/fittrack/internal/catalog"
	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/state"
	"github.com/ErlanBelekov/fittrack/internal/transport/http/handler"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeSessionUsecase struct {
	logSession   func(ctx context.Context, userID string, in usecase.LogSessionInput) (*domain.WorkoutSession, error)
	listSessions func(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error)
}

func (f *fakeSessionUsecase) LogSession(ctx context.Context, userID string, in usecase.LogSessionInput) (*domain.WorkoutSession, error) {
	return f.logSession(ctx, userID, in)
}

func (f *fakeSessionUsecase) ListSessions(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error) {
	return f.listSessions(ctx, userID, limit)
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]domain.Workout{
		{ID: "yoga", Name: "Yoga Flow", Category: "Flexibility", TypicalDuration: 45},
		{ID: "run", Name: "Running", Category: "Cardio", TypicalDuration: 30},
	}, nil, nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func newWorkoutEngine(t *testing.T, uc *fakeSessionUsecase) *gin.Engine {
	h := handler.NewWorkoutHandler(newTestCatalog(t), uc, testLogger)

	r := gin.New()
	r.GET("/workouts", h.List)
	r.GET("/workouts/categories", h.Categories)
	r.GET("/workouts/:id", h.GetByID)
	r.POST("/sessions", withUser("user-1"), h.LogSession)
	r.GET("/sessions", withUser("user-1"), h.ListSessions)
	return r
}

func TestListWorkouts_Filters(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantCount int
		wantMsg   string
	}{
		{"all", "/workouts", 2, ""},
		{"query", "/workouts?q=YOGA", 1, ""},
		{"category", "/workouts?category=Cardio", 1, ""},
		{"no search match", "/workouts?q=swim", 0, state.MsgNoSearchResults},
		{"empty category", "/workouts?category=Strength", 0, state.MsgEmptyCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(newWorkoutEngine(t, &fakeSessionUsecase{}), http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := decode(t, w)
			if got := len(body["workouts"].([]any)); got != tt.wantCount {
				t.Errorf("workouts = %d, want %d", got, tt.wantCount)
			}
			msg, _ := body["message"].(string)
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestGetWorkout_IncludesPrefilledForm(t *testing.T) {
	w := doJSON(newWorkoutEngine(t, &fakeSessionUsecase{}), http.MethodGet, "/workouts/yoga", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	form := decode(t, w)["session_form"].(map[string]any)
	if form["duration"] != float64(45) || form["heart_rate"] != float64(120) || form["body_temperature"] != 98.6 {
		t.Errorf("unexpected form %v", form)
	}
}

func TestGetWorkout_Unknown_Returns404(t *testing.T) {
	w := doJSON(newWorkoutEngine(t, &fakeSessionUsecase{}), http.MethodGet, "/workouts/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestLogSession_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"negative heart rate", `{"workout_id":"run","duration":30,"heart_rate":-1,"body_temperature":98.6}`, "heart_rate"},
		{"missing heart rate", `{"workout_id":"run","duration":30,"body_temperature":98.6}`, "heart_rate"},
		{"zero duration", `{"workout_id":"run","duration":0,"heart_rate":120,"body_temperature":98.6}`, "duration"},
		{"temperature too high", `{"workout_id":"run","duration":30,"heart_rate":120,"body_temperature":110}`, "body_temperature"},
		{"missing workout", `{"duration":30,"heart_rate":120,"body_temperature":98.6}`, "workout_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(newWorkoutEngine(t, &fakeSessionUsecase{}), http.MethodPost, "/sessions", tt.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", w.Code)
			}
			errs := decode(t, w)["errors"].(map[string]any)
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("errors = %v, want key %q", errs, tt.field)
			}
		})
	}
}

func TestLogSession_Success(t *testing.T) {
	var gotUser string
	uc := &fakeSessionUsecase{
		logSession: func(_ context.Context, userID string, in usecase.LogSessionInput) (*domain.WorkoutSession, error) {
			gotUser = userID
			return &domain.WorkoutSession{ID: "s1", WorkoutID: in.WorkoutID, DurationMin: in.DurationMin}, nil
		},
	}
	w := doJSON(newWorkoutEngine(t, uc), http.MethodPost, "/sessions",
		`{"workout_id":"run","duration":30,"heart_rate":140,"body_temperature":99.1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if gotUser != "user-1" {
		t.Errorf("user = %q", gotUser)
	}
	if decode(t, w)["id"] != "s1" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLogSession_LongSessionAndZeroHeartRate(t *testing.T) {
	var got usecase.LogSessionInput
	uc := &fakeSessionUsecase{
		logSession: func(_ context.Context, _ string, in usecase.LogSessionInput) (*domain.WorkoutSession, error) {
			got = in
			return &domain.WorkoutSession{ID: "s2"}, nil
		},
	}
	w := doJSON(newWorkoutEngine(t, uc), http.MethodPost, "/sessions",
		`{"workout_id":"run","duration":600,"heart_rate":0,"body_temperature":98.6}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if got.DurationMin != 600 || got.HeartRate != 0 {
		t.Errorf("usecase input = %+v", got)
	}
}

func TestLogSession_UnknownWorkout_Returns404(t *testing.T) {
	uc := &fakeSessionUsecase{
		logSession: func(context.Context, string, usecase.LogSessionInput) (*domain.WorkoutSession, error) {
			return nil, domain.ErrWorkoutNotFound
		},
	}
	w := doJSON(newWorkoutEngine(t, uc), http.MethodPost, "/sessions",
		`{"workout_id":"zzz","duration":30,"heart_rate":140,"body_temperature":99.1}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListSessions(t *testing.T) {
	var gotLimit int
	uc := &fakeSessionUsecase{
		listSessions: func(_ context.Context, _ string, limit int) ([]*domain.WorkoutSession, error) {
			gotLimit = limit
			return []*domain.WorkoutSession{{ID: "s1"}}, nil
		},
	}
	r := newWorkoutEngine(t, uc)

	w := doJSON(r, http.MethodGet, "/sessions?limit=5", "")
	if w.Code != http.StatusOK || gotLimit != 5 {
		t.Fatalf("status = %d, limit = %d", w.Code, gotLimit)
	}

	w = doJSON(r, http.MethodGet, "/sessions?limit=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	uc.listSessions = func(context.Context, string, int) ([]*domain.WorkoutSession, error) {
		return nil, errors.New("db down")
	}
	w = doJSON(r, http.MethodGet, "/sessions", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
