package repository

import (
	"context"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

// UseCase depends on interface, not concrete implementation.
// This way we can swap the DB later and pass fakes in tests.
type UserRepository interface {
	// Create inserts the user together with its profile and settings rows in
	// one transaction. Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *domain.User, profile *domain.Profile, settings *domain.Settings) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	// Delete removes the user and every row it owns.
	Delete(ctx context.Context, id string) error

	CreateResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// ClaimResetToken marks an unused, unexpired token as used and returns it.
	// Returns domain.ErrTokenInvalid otherwise.
	ClaimResetToken(ctx context.Context, tokenHash string) (*domain.ResetToken, error)
}
