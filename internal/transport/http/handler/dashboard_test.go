package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/transport/http/handler"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeDashboardUsecase func(ctx context.Context, userID string) (*usecase.Dashboard, error)

func (f fakeDashboardUsecase) Get(ctx context.Context, userID string) (*usecase.Dashboard, error) {
	return f(ctx, userID)
}

func newDashboardEngine(uc fakeDashboardUsecase) *gin.Engine {
	h := handler.NewDashboardHandler(uc, testLogger)
	r := gin.New()
	r.GET("/dashboard", withUser("user-1"), h.Get)
	return r
}

func TestDashboard(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"no settings row", domain.ErrSettingsNotFound, http.StatusNotFound},
		{"db down", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			uc := fakeDashboardUsecase(func(_ context.Context, userID string) (*usecase.Dashboard, error) {
				gotUser = userID
				if tt.err != nil {
					return nil, tt.err
				}
				return &usecase.Dashboard{CurrentStreak: 3}, nil
			})
			w := doJSON(newDashboardEngine(uc), http.MethodGet, "/dashboard", "")
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if gotUser != "user-1" {
				t.Errorf("user = %q", gotUser)
			}
			if tt.err == nil && decode(t, w)["current_streak"] != float64(3) {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}
