package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/repository"
	"github.com/ErlanBelekov/fittrack/internal/validation"
)

type ProfileUsecase struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfileUsecase(profiles repository.ProfileRepository, logger *slog.Logger) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles, logger: logger.With("component", "profile_usecase")}
}

// UpdateProfileInput replaces every editable field. Nil pointers clear the
// optional body metrics.
type UpdateProfileInput struct {
	FullName string
	Bio      string
	Age      *int
	WeightKg *float64
	HeightCm *float64
	Gender   *domain.Gender
	Goals    []string
}

func (u *ProfileUsecase) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := u.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID string, in UpdateProfileInput) (*domain.Profile, error) {
	goals := make([]string, 0, len(in.Goals))
	for _, g := range in.Goals {
		if len(goals) == domain.MaxGoals {
			break
		}
		goals = append(goals, g)
	}

	p := &domain.Profile{
		UserID:   userID,
		FullName: validation.TrimName(in.FullName),
		Bio:      in.Bio,
		Age:      in.Age,
		WeightKg: in.WeightKg,
		HeightCm: in.HeightCm,
		Gender:   in.Gender,
		Goals:    goals,
	}
	updated, err := u.profiles.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	u.logger.InfoContext(ctx, "profile updated")
	return updated, nil
}
