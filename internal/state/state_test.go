package state_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/state"
	"github.com/ErlanBelekov/fittrack/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var library = []domain.Workout{
	{ID: "yoga", Name: "Yoga Flow", Category: "Flexibility", TypicalDuration: 45},
	{ID: "run", Name: "Running", Category: "Cardio", TypicalDuration: 30},
}

func TestMenu_Transitions(t *testing.T) {
	m := state.NewMenu()
	assert.Len(t, m.Visible(library), 2)

	m = m.SetQuery("YOGA")
	got := m.Visible(library)
	require.Len(t, got, 1)
	assert.Equal(t, "yoga", got[0].ID)

	m = m.SelectCategory("Cardio")
	assert.Empty(t, m.Visible(library))
	assert.Equal(t, state.MsgNoSearchResults, m.EmptyMessage())

	m = m.ClearQuery()
	assert.Len(t, m.Visible(library), 1)

	m = m.SelectCategory("Strength")
	assert.Empty(t, m.Visible(library))
	assert.Equal(t, state.MsgEmptyCategory, m.EmptyMessage())
}

func TestMenu_UpdatesDoNotAliasPreviousState(t *testing.T) {
	before := state.NewMenu()
	after := before.SetQuery("run")
	assert.Equal(t, "", before.SearchQuery)
	assert.Equal(t, "run", after.SearchQuery)
}

func TestStartWorkout_Prefill(t *testing.T) {
	f := state.StartWorkout(library[0])
	assert.Equal(t, state.SessionForm{
		WorkoutID:       "yoga",
		DurationMin:     45,
		HeartRate:       120,
		BodyTemperature: 98.6,
	}, f)
}

func TestAuthForm_SetFieldClearsOnlyThatError(t *testing.T) {
	f, ok := state.AuthForm{}.Submit()
	require.False(t, ok)
	require.Len(t, f.Errors, 4)

	f = f.SetField(validation.FieldEmail, "jo@example.com")
	assert.NotContains(t, f.Errors, validation.FieldEmail)
	assert.Contains(t, f.Errors, validation.FieldPassword)

	f = f.SetField("nickname", "jo")
	assert.Len(t, f.Errors, 3)

	f = f.SetField(validation.FieldFullName, "Jo Bloggs").
		SetField(validation.FieldPassword, "Abcdefg1").
		SetField(validation.FieldConfirmPassword, "Abcdefg1")
	assert.Empty(t, f.Errors)

	f, ok = f.Submit()
	assert.True(t, ok)
	assert.Empty(t, f.Errors)
}

func TestDietLog_AddAndRemove(t *testing.T) {
	at := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	d := state.NewDietLog(2000)

	d = d.AddMeal("m1", state.MealInput{Name: "Oats", Calories: 300, MealType: domain.MealBreakfast}, at)
	d = d.AddMeal("m2", state.MealInput{Name: "Salad", Calories: 450, MealType: domain.MealLunch}, at)
	assert.Equal(t, 750, d.Consumed)
	assert.InDelta(t, 37.5, d.Percent(), 0.001)

	unchanged := d.AddMeal("m3", state.MealInput{Name: "", Calories: 100, MealType: domain.MealSnack}, at)
	assert.Equal(t, d, unchanged)
	unchanged = d.AddMeal("m3", state.MealInput{Name: "Bar", Calories: 100, MealType: "brunch"}, at)
	assert.Equal(t, d, unchanged)

	before := d
	d = d.RemoveMeal("m1")
	assert.Equal(t, 450, d.Consumed)
	require.Len(t, d.Meals, 1)
	assert.Equal(t, "m2", d.Meals[0].ID)
	assert.Len(t, before.Meals, 2, "previous state must not change")

	assert.Equal(t, d, d.RemoveMeal("nope"))
}

func TestDietLog_ZeroGoal(t *testing.T) {
	assert.Zero(t, state.NewDietLog(0).Percent())
}

func TestToggleGoal(t *testing.T) {
	goals := state.ToggleGoal(nil, "Lose Weight")
	assert.Equal(t, []string{"Lose Weight"}, goals)

	goals = state.ToggleGoal(goals, "Build Muscle")
	goals = state.ToggleGoal(goals, "Stay Active")
	goals = state.ToggleGoal(goals, "Reduce Stress")
	assert.Equal(t, []string{"Lose Weight", "Build Muscle", "Stay Active"}, goals)

	goals = state.ToggleGoal(goals, "Build Muscle")
	assert.Equal(t, []string{"Lose Weight", "Stay Active"}, goals)
}

func TestProfileDraft_EditCycle(t *testing.T) {
	p := domain.Profile{UserID: "u1", FullName: "Jo", Goals: []string{"Stay Active"}}
	d := state.NewProfileDraft(p).BeginEdit()
	assert.True(t, d.Editing)

	d = d.ToggleGoal("Build Muscle")
	d.Temp.FullName = "Jo Bloggs"
	assert.Equal(t, []string{"Stay Active"}, d.Saved.Goals)

	cancelled := d.Cancel()
	assert.False(t, cancelled.Editing)
	assert.Equal(t, "Jo", cancelled.Temp.FullName)

	committed := d.Commit()
	assert.Equal(t, "Jo Bloggs", committed.Saved.FullName)
	assert.Equal(t, []string{"Stay Active", "Build Muscle"}, committed.Saved.Goals)
}

func TestState_IsSerialisable(t *testing.T) {
	menu := state.NewMenu().SetQuery("run")
	b, err := json.Marshal(menu)
	require.NoError(t, err)

	var back state.Menu
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, menu, back)
}
