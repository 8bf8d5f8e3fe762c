package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `p.user_id, u.email, p.full_name, p.bio, p.age, p.weight_kg, p.height_cm,
	p.gender, p.goals, p.profile_photo, p.created_at, p.updated_at`

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`, userID)
	return scanProfile(row)
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE profiles SET
				full_name = $2, bio = $3, age = $4, weight_kg = $5, height_cm = $6,
				gender = $7, goals = $8, updated_at = NOW()
			WHERE user_id = $1
			RETURNING *
		)
		SELECT `+profileColumns+`
		FROM updated p JOIN users u ON u.id = p.user_id`,
		p.UserID, p.FullName, p.Bio, p.Age, p.WeightKg, p.HeightCm, p.Gender, p.Goals,
	)
	return scanProfile(row)
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.UserID, &p.Email, &p.FullName, &p.Bio, &p.Age, &p.WeightKg, &p.HeightCm,
		&p.Gender, &p.Goals, &p.ProfilePhoto, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	if p.Goals == nil {
		p.Goals = []string{}
	}
	return &p, nil
}
