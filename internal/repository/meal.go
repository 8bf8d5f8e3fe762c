package repository

import (
	"context"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

type MealRepository interface {
	Create(ctx context.Context, m *domain.LoggedMeal) (*domain.LoggedMeal, error)
	Delete(ctx context.Context, id, userID string) error
	// ListBetween returns meals logged in [from, to), oldest first.
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.LoggedMeal, error)
}
