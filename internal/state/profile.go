package state

import (
	"slices"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

// ProfileDraft is the profile page: the saved profile and, while editing,
// a working copy.
type ProfileDraft struct {
	Saved   domain.Profile `json:"saved"`
	Temp    domain.Profile `json:"temp"`
	Editing bool           `json:"editing"`
}

func NewProfileDraft(p domain.Profile) ProfileDraft {
	return ProfileDraft{Saved: p, Temp: cloneProfile(p)}
}

func (d ProfileDraft) BeginEdit() ProfileDraft {
	d.Temp = cloneProfile(d.Saved)
	d.Editing = true
	return d
}

func (d ProfileDraft) Cancel() ProfileDraft {
	d.Temp = cloneProfile(d.Saved)
	d.Editing = false
	return d
}

// Commit makes the working copy the saved profile.
func (d ProfileDraft) Commit() ProfileDraft {
	d.Saved = cloneProfile(d.Temp)
	d.Editing = false
	return d
}

// ToggleGoal removes goal when selected, otherwise appends it and keeps
// only the first domain.MaxGoals selections.
func (d ProfileDraft) ToggleGoal(goal string) ProfileDraft {
	d.Temp.Goals = ToggleGoal(d.Temp.Goals, goal)
	return d
}

func ToggleGoal(goals []string, goal string) []string {
	if slices.Contains(goals, goal) {
		out := make([]string, 0, len(goals))
		for _, g := range goals {
			if g != goal {
				out = append(out, g)
			}
		}
		return out
	}
	out := append(slices.Clone(goals), goal)
	if len(out) > domain.MaxGoals {
		out = out[:domain.MaxGoals]
	}
	return out
}

func cloneProfile(p domain.Profile) domain.Profile {
	p.Goals = slices.Clone(p.Goals)
	return p
}
