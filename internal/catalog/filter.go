package catalog

import (
	"strings"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

// FilterWorkouts keeps the workouts whose name contains query, ignoring
// case, and whose category equals category. domain.AllCategories matches
// every category. Order is preserved and the input is not modified.
func FilterWorkouts(workouts []domain.Workout, query, category string) []domain.Workout {
	q := strings.ToLower(query)
	out := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if category != domain.AllCategories && w.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(w.Name), q) {
			continue
		}
		out = append(out, w)
	}
	return out
}
