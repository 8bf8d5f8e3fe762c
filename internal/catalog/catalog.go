// Package catalog serves the static reference data bundled with the binary:
// the workout library, the sample meals and the motivational quotes.
package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

var (
	//go:embed data/workouts.json
	workoutsJSON []byte
	//go:embed data/meals.json
	mealsJSON []byte
	//go:embed data/quotes.txt
	quotesTxt []byte
)

// Catalog is immutable after Load and safe for concurrent reads.
type Catalog struct {
	workouts []domain.Workout
	byID     map[string]int
	meals    []domain.Meal
	quotes   []string
}

// Load parses the embedded data.
func Load() (*Catalog, error) {
	var workouts []domain.Workout
	if err := json.Unmarshal(workoutsJSON, &workouts); err != nil {
		return nil, fmt.Errorf("parse workouts: %w", err)
	}
	var meals []domain.Meal
	if err := json.Unmarshal(mealsJSON, &meals); err != nil {
		return nil, fmt.Errorf("parse meals: %w", err)
	}
	var quotes []string
	sc := bufio.NewScanner(bytes.NewReader(quotesTxt))
	for sc.Scan() {
		if q := strings.TrimSpace(sc.Text()); q != "" {
			quotes = append(quotes, q)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read quotes: %w", err)
	}
	return New(workouts, meals, quotes)
}

// New builds a catalog from explicit data. Workout IDs must be unique.
func New(workouts []domain.Workout, meals []domain.Meal, quotes []string) (*Catalog, error) {
	byID := make(map[string]int, len(workouts))
	for i, w := range workouts {
		if _, dup := byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate workout id %q", w.ID)
		}
		byID[w.ID] = i
	}
	return &Catalog{workouts: workouts, byID: byID, meals: meals, quotes: quotes}, nil
}

// Workouts returns a copy of the full library in catalog order.
func (c *Catalog) Workouts() []domain.Workout {
	return append([]domain.Workout(nil), c.workouts...)
}

func (c *Catalog) Workout(id string) (domain.Workout, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Workout{}, domain.ErrWorkoutNotFound
	}
	return c.workouts[i], nil
}

// Filter applies FilterWorkouts to the library.
func (c *Catalog) Filter(query, category string) []domain.Workout {
	return FilterWorkouts(c.workouts, query, category)
}

// Categories returns "All" followed by each distinct category in the order
// it first appears.
func (c *Catalog) Categories() []string {
	out := []string{domain.AllCategories}
	seen := map[string]bool{}
	for _, w := range c.workouts {
		if !seen[w.Category] {
			seen[w.Category] = true
			out = append(out, w.Category)
		}
	}
	return out
}

func (c *Catalog) SampleMeals() []domain.Meal {
	return append([]domain.Meal(nil), c.meals...)
}

// Quote picks a motivational quote at random, or "" when none are loaded.
func (c *Catalog) Quote() string {
	if len(c.quotes) == 0 {
		return ""
	}
	return c.quotes[rand.IntN(len(c.quotes))]
}
