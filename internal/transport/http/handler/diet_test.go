package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/state"
	"github.com/ErlanBelekov/fittrack/internal/transport/http/handler"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeDietUsecase struct {
	logMeal    func(ctx context.Context, userID string, in state.MealInput) (*domain.LoggedMeal, error)
	deleteMeal func(ctx context.Context, userID, mealID string) error
	today      func(ctx context.Context, userID string) (*usecase.DayLog, error)
}

func (f *fakeDietUsecase) LogMeal(ctx context.Context, userID string, in state.MealInput) (*domain.LoggedMeal, error) {
	return f.logMeal(ctx, userID, in)
}

func (f *fakeDietUsecase) DeleteMeal(ctx context.Context, userID, mealID string) error {
	return f.deleteMeal(ctx, userID, mealID)
}

func (f *fakeDietUsecase) Today(ctx context.Context, userID string) (*usecase.DayLog, error) {
	return f.today(ctx, userID)
}

type fakeSamples []domain.Meal

func (s fakeSamples) SampleMeals() []domain.Meal { return s }

func newDietEngine(uc *fakeDietUsecase) *gin.Engine {
	h := handler.NewDietHandler(uc, fakeSamples{{ID: "oats", Name: "Overnight Oats"}}, testLogger)

	r := gin.New()
	r.GET("/meals/samples", h.Samples)
	r.POST("/meals", withUser("user-1"), h.LogMeal)
	r.DELETE("/meals/:id", withUser("user-1"), h.DeleteMeal)
	r.GET("/meals/today", withUser("user-1"), h.Today)
	return r
}

func TestSamples(t *testing.T) {
	w := doJSON(newDietEngine(&fakeDietUsecase{}), http.MethodGet, "/meals/samples", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := len(decode(t, w)["meals"].([]any)); got != 1 {
		t.Errorf("meals = %d, want 1", got)
	}
}

func TestLogMeal_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"calories":300,"meal_type":"lunch"}`, "name"},
		{"zero calories", `{"name":"Oats","calories":0,"meal_type":"lunch"}`, "calories"},
		{"unknown type", `{"name":"Oats","calories":300,"meal_type":"brunch"}`, "meal_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(newDietEngine(&fakeDietUsecase{}), http.MethodPost, "/meals", tt.body)
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

func TestLogMeal_Success(t *testing.T) {
	uc := &fakeDietUsecase{
		logMeal: func(_ context.Context, _ string, in state.MealInput) (*domain.LoggedMeal, error) {
			return &domain.LoggedMeal{ID: "m1", Name: in.Name, Calories: in.Calories, MealType: in.MealType}, nil
		},
	}
	w := doJSON(newDietEngine(uc), http.MethodPost, "/meals", `{"name":"Oats","calories":300,"meal_type":"breakfast"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["id"] != "m1" || body["meal_type"] != "breakfast" {
		t.Errorf("body = %v", body)
	}
}

func TestDeleteMeal(t *testing.T) {
	const id = "6f1c2b8e-3a44-4f0e-9d0a-1b2c3d4e5f60"
	tests := []struct {
		name string
		path string
		err  error
		want int
	}{
		{"deleted", "/meals/" + id, nil, http.StatusNoContent},
		{"not a uuid", "/meals/abc", nil, http.StatusNotFound},
		{"not found", "/meals/" + id, domain.ErrMealNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeDietUsecase{
				deleteMeal: func(context.Context, string, string) error { return tt.err },
			}
			w := doJSON(newDietEngine(uc), http.MethodDelete, tt.path, "")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	uc := &fakeDietUsecase{
		today: func(context.Context, string) (*usecase.DayLog, error) {
			return &usecase.DayLog{Meals: []domain.LoggedMeal{}, TotalCalories: 500, Goal: 2000, Percent: 25}, nil
		},
	}
	w := doJSON(newDietEngine(uc), http.MethodGet, "/meals/today", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decode(t, w); body["percent"] != float64(25) {
		t.Errorf("body = %v", body)
	}
}
