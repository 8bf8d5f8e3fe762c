package state

import (
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

// DietLog is the meal log on the diet page.
type DietLog struct {
	Meals    []domain.LoggedMeal `json:"meals"`
	Consumed int                 `json:"consumed"`
	Goal     int                 `json:"goal"`
}

func NewDietLog(goal int) DietLog {
	return DietLog{Meals: []domain.LoggedMeal{}, Goal: goal}
}

// MealInput holds the raw add-meal form values.
type MealInput struct {
	Name     string          `json:"name"`
	Calories int             `json:"calories"`
	MealType domain.MealType `json:"meal_type"`
}

// Complete reports whether every field is filled in with a usable value.
func (in MealInput) Complete() bool {
	return in.Name != "" && in.Calories > 0 && in.MealType.Valid()
}

// AddMeal appends the meal and adds its calories. Incomplete input is
// ignored and the log is returned unchanged.
func (d DietLog) AddMeal(id string, in MealInput, at time.Time) DietLog {
	if !in.Complete() {
		return d
	}
	meals := make([]domain.LoggedMeal, 0, len(d.Meals)+1)
	meals = append(meals, d.Meals...)
	meals = append(meals, domain.LoggedMeal{
		ID:       id,
		Name:     in.Name,
		Calories: in.Calories,
		MealType: in.MealType,
		LoggedAt: at,
	})
	d.Meals = meals
	d.Consumed += in.Calories
	return d
}

// RemoveMeal drops the meal with id and subtracts its calories. Unknown ids
// are a no-op.
func (d DietLog) RemoveMeal(id string) DietLog {
	meals := make([]domain.LoggedMeal, 0, len(d.Meals))
	removed := 0
	found := false
	for _, m := range d.Meals {
		if !found && m.ID == id {
			removed = m.Calories
			found = true
			continue
		}
		meals = append(meals, m)
	}
	if !found {
		return d
	}
	d.Meals = meals
	d.Consumed -= removed
	return d
}

// Percent is consumed calories as a percentage of the goal.
func (d DietLog) Percent() float64 {
	if d.Goal <= 0 {
		return 0
	}
	return float64(d.Consumed) / float64(d.Goal) * 100
}
