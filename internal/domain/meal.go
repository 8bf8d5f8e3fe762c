package domain

import (
	"errors"
	"time"
)

var ErrMealNotFound = errors.New("meal not found")

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is a sample meal shown on the diet page.
type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    MealType `json:"category"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fats        int      `json:"fats"`
	Benefits    string   `json:"benefits"`
}

// LoggedMeal is a meal a user recorded eating.
type LoggedMeal struct {
	ID       string    `json:"id"`
	UserID   string    `json:"-"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	MealType MealType  `json:"meal_type"`
	LoggedAt time.Time `json:"logged_at"`
}
