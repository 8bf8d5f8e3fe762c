package domain

import (
	"errors"
	"time"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSessionNotFound = errors.New("workout session not found")
)

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// AllCategories is the category selector value that disables category filtering.
const AllCategories = "All"

// Workout is a read-only catalog entry.
type Workout struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Intensity        Intensity `json:"intensity"`
	TypicalDuration  int       `json:"typical_duration"`
	CalorieRangeLow  int       `json:"calorie_range_low"`
	CalorieRangeHigh int       `json:"calorie_range_high"`
	Description      string    `json:"description"`
}

// WorkoutSession is one performed workout logged by a user.
type WorkoutSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"-"`
	WorkoutID       string    `json:"workout_id"`
	WorkoutName     string    `json:"workout_name"`
	DurationMin     int       `json:"duration"`
	HeartRate       int       `json:"heart_rate"`
	BodyTemperature float64   `json:"body_temperature"` // Fahrenheit
	Notes           string    `json:"notes"`
	PerformedAt     time.Time `json:"performed_at"`
	CreatedAt       time.Time `json:"created_at"`
}
