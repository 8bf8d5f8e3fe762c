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

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

const sessionColumns = `id, user_id, workout_id, workout_name, duration_min, heart_rate,
	body_temperature, notes, performed_at, created_at`

func (r *SessionRepository) Create(ctx context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO workout_sessions (
			user_id, workout_id, workout_name, duration_min, heart_rate,
			body_temperature, notes, performed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+sessionColumns,
		s.UserID, s.WorkoutID, s.WorkoutName, s.DurationMin, s.HeartRate,
		s.BodyTemperature, s.Notes, s.PerformedAt,
	)
	return scanSession(row)
}

func (r *SessionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions
		WHERE user_id = $1
		ORDER BY performed_at DESC, id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.WorkoutSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_sessions WHERE user_id = $1 AND performed_at >= $2`,
		userID, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (r *SessionRepository) ActiveDays(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT (performed_at AT TIME ZONE 'UTC')::date AS day
		FROM workout_sessions
		WHERE user_id = $1 AND performed_at >= $2
		ORDER BY day DESC`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("active days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan active day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active days: %w", err)
	}
	return days, nil
}

func scanSession(row rowScanner) (*domain.WorkoutSession, error) {
	var s domain.WorkoutSession
	err := row.Scan(
		&s.ID, &s.UserID, &s.WorkoutID, &s.WorkoutName, &s.DurationMin, &s.HeartRate,
		&s.BodyTemperature, &s.Notes, &s.PerformedAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &s, nil
}
