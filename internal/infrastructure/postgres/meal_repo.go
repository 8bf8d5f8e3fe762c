package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MealRepository struct {
	pool *pgxpool.Pool
}

func NewMealRepository(pool *pgxpool.Pool) *MealRepository {
	return &MealRepository{pool: pool}
}

func (r *MealRepository) Create(ctx context.Context, m *domain.LoggedMeal) (*domain.LoggedMeal, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO meals (user_id, name, calories, meal_type, logged_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, calories, meal_type, logged_at`,
		m.UserID, m.Name, m.Calories, m.MealType, m.LoggedAt,
	)
	return scanMeal(row)
}

func (r *MealRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM meals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.LoggedMeal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, calories, meal_type, logged_at
		FROM meals
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at ASC, id ASC`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := []*domain.LoggedMeal{}
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}

func scanMeal(row rowScanner) (*domain.LoggedMeal, error) {
	var m domain.LoggedMeal
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Calories, &m.MealType, &m.LoggedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("scan meal: %w", err)
	}
	return &m, nil
}
