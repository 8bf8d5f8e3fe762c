package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
	"github.com/ErlanBelekov/fittrack/internal/repository"
	"github.com/ErlanBelekov/fittrack/internal/state"
)

type DietUsecase struct {
	meals    repository.MealRepository
	settings repository.SettingsRepository
	logger   *slog.Logger
	now      func() time.Time
}

func NewDietUsecase(meals repository.MealRepository, settings repository.SettingsRepository, logger *slog.Logger) *DietUsecase {
	return &DietUsecase{
		meals:    meals,
		settings: settings,
		logger:   logger.With("component", "diet_usecase"),
		now:      time.Now,
	}
}

var ErrIncompleteMeal = errors.New("meal name, calories and type are required")

// LogMeal stores a meal eaten now. Incomplete input is rejected with
// ErrIncompleteMeal.
func (u *DietUsecase) LogMeal(ctx context.Context, userID string, in state.MealInput) (*domain.LoggedMeal, error) {
	if !in.Complete() {
		return nil, ErrIncompleteMeal
	}
	m, err := u.meals.Create(ctx, &domain.LoggedMeal{
		UserID:   userID,
		Name:     in.Name,
		Calories: in.Calories,
		MealType: in.MealType,
		LoggedAt: u.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	metrics.MealsLoggedTotal.WithLabelValues(string(in.MealType)).Inc()
	return m, nil
}

func (u *DietUsecase) DeleteMeal(ctx context.Context, userID, mealID string) error {
	if err := u.meals.Delete(ctx, mealID, userID); err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			return err
		}
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

// DayLog is the diet page summary for one UTC day.
type DayLog struct {
	Meals         []domain.LoggedMeal `json:"meals"`
	TotalCalories int                 `json:"total_calories"`
	Goal          int                 `json:"goal"`
	Percent       float64             `json:"percent"`
}

// Today totals the meals logged since UTC midnight against the user's
// daily calorie goal.
func (u *DietUsecase) Today(ctx context.Context, userID string) (*DayLog, error) {
	settings, err := u.settings.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	from := startOfDay(u.now())
	meals, err := u.meals.ListBetween(ctx, userID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	log := state.NewDietLog(settings.DailyCalorieGoal)
	for _, m := range meals {
		log = log.AddMeal(m.ID, state.MealInput{Name: m.Name, Calories: m.Calories, MealType: m.MealType}, m.LoggedAt)
	}
	return &DayLog{
		Meals:         log.Meals,
		TotalCalories: log.Consumed,
		Goal:          log.Goal,
		Percent:       log.Percent(),
	}, nil
}
