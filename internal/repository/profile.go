package repository

import (
	"context"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}
