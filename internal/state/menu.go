// Package state models the page state of the web client as plain values.
// Every update is a pure function that returns a new value, so the state
// can be serialised, replayed and tested without a renderer.
package state

import (
	"github.com/ErlanBelekov/fittrack/internal/catalog"
	"github.com/ErlanBelekov/fittrack/internal/domain"
)

const (
	MsgNoSearchResults = "No exercises found. Try a different search."
	MsgEmptyCategory   = "No exercises in this category yet."
)

// Menu is the filter state of the workout library.
type Menu struct {
	SearchQuery    string `json:"search_query"`
	ActiveCategory string `json:"active_category"`
}

func NewMenu() Menu {
	return Menu{ActiveCategory: domain.AllCategories}
}

func (m Menu) SetQuery(q string) Menu {
	m.SearchQuery = q
	return m
}

func (m Menu) ClearQuery() Menu {
	m.SearchQuery = ""
	return m
}

func (m Menu) SelectCategory(c string) Menu {
	m.ActiveCategory = c
	return m
}

// Visible derives the workouts shown for this state.
func (m Menu) Visible(workouts []domain.Workout) []domain.Workout {
	return catalog.FilterWorkouts(workouts, m.SearchQuery, m.ActiveCategory)
}

// EmptyMessage is shown when Visible returns nothing.
func (m Menu) EmptyMessage() string {
	if m.SearchQuery != "" {
		return MsgNoSearchResults
	}
	return MsgEmptyCategory
}

// SessionForm is the form opened by "Start workout".
type SessionForm struct {
	WorkoutID       string  `json:"workout_id"`
	DurationMin     int     `json:"duration"`
	HeartRate       int     `json:"heart_rate"`
	BodyTemperature float64 `json:"body_temperature"`
	Notes           string  `json:"notes"`
}

const (
	DefaultHeartRate       = 120
	DefaultBodyTemperature = 98.6
)

// StartWorkout pre-fills the session form from a catalog entry.
func StartWorkout(w domain.Workout) SessionForm {
	return SessionForm{
		WorkoutID:       w.ID,
		DurationMin:     w.TypicalDuration,
		HeartRate:       DefaultHeartRate,
		BodyTemperature: DefaultBodyTemperature,
	}
}
