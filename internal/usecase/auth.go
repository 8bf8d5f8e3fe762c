package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/email"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
	"github.com/ErlanBelekov/fittrack/internal/ratelimit"
	"github.com/ErlanBelekov/fittrack/internal/reminder"
	"github.com/ErlanBelekov/fittrack/internal/repository"
	"github.com/ErlanBelekov/fittrack/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultResetTokenTTL = 30 * time.Minute
	defaultJWTTTL        = 24 * time.Hour
)

type AuthConfig struct {
	JWTKey        []byte
	JWTTTL        time.Duration
	ResetTokenTTL time.Duration
	AppBaseURL    string
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

type AuthUsecase struct {
	users   repository.UserRepository
	email   email.Sender
	limiter ratelimit.Limiter
	cfg     AuthConfig
	logger  *slog.Logger
	now     func() time.Time
}

func NewAuthUsecase(users repository.UserRepository, emailSender email.Sender, limiter ratelimit.Limiter, cfg AuthConfig, logger *slog.Logger) *AuthUsecase {
	if cfg.JWTTTL == 0 {
		cfg.JWTTTL = defaultJWTTTL
	}
	if cfg.ResetTokenTTL == 0 {
		cfg.ResetTokenTTL = defaultResetTokenTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUsecase{
		users:   users,
		email:   emailSender,
		limiter: limiter,
		cfg:     cfg,
		logger:  logger.With("component", "auth_usecase"),
		now:     time.Now,
	}
}

type SignupInput struct {
	Email    string
	FullName string
	Password string
}

// Session is what a successful signup or login hands back to the client.
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"-"`
}

// Signup creates the account with a default profile and settings and signs
// the user in.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (_ *Session, err error) {
	defer func() { recordAuth("signup", err) }()

	if r := validation.ValidateEmail(in.Email); !r.Valid {
		return nil, domain.NewAuthError(domain.CodeInvalidEmail, nil)
	}
	if r := validation.ValidatePassword(in.Password); !r.Valid {
		return nil, domain.NewAuthError(domain.CodeWeakPassword, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	emailAddr := strings.TrimSpace(in.Email)
	profile := domain.NewProfile("", emailAddr, validation.TrimName(in.FullName))
	settings := domain.DefaultSettings("")
	settings.NextReminderAt = reminder.NextFor(settings, u.now().UTC())

	user, err := u.users.Create(ctx, &domain.User{Email: emailAddr, PasswordHash: string(hash)}, profile, settings)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.NewAuthError(domain.CodeEmailInUse, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	u.logger.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return u.issue(user)
}

// Login checks credentials. Attempts are counted per email address and
// rejected with auth/too-many-requests once the window limit is reached.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (_ *Session, err error) {
	defer func() { recordAuth("login", err) }()

	key := "login:" + strings.ToLower(strings.TrimSpace(emailAddr))
	res, limErr := u.limiter.Hit(ctx, key)
	if limErr != nil {
		// Fail open when the limiter backend is unavailable.
		u.logger.WarnContext(ctx, "login limiter unavailable", "error", limErr)
	} else if !res.Allowed {
		return nil, domain.NewAuthError(domain.CodeTooManyReqs, domain.ErrTooManyLogins)
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(emailAddr))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NewAuthError(domain.CodeUserNotFound, err)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewAuthError(domain.CodeWrongPassword, domain.ErrUnauthorized)
	}

	if err := u.limiter.Reset(ctx, key); err != nil {
		u.logger.WarnContext(ctx, "reset login limiter", "error", err)
	}
	return u.issue(user)
}

// RequestPasswordReset emails a one-time reset link when the address belongs
// to an account. Unknown addresses succeed silently so callers cannot probe
// which emails are registered.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, emailAddr string) (err error) {
	defer func() { recordAuth("password_reset", err) }()

	if r := validation.ValidateEmail(emailAddr); !r.Valid {
		return domain.NewAuthError(domain.CodeInvalidEmail, nil)
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(emailAddr))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			u.logger.InfoContext(ctx, "password reset for unknown email")
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err = io.ReadFull(rand.Reader, raw); err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)

	expiresAt := u.now().Add(u.cfg.ResetTokenTTL)
	if err = u.users.CreateResetToken(ctx, user.ID, hashToken(rawToken), expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := u.cfg.AppBaseURL + "/reset-password?token=" + rawToken
	subject, body := email.PasswordReset(link, u.cfg.ResetTokenTTL)
	if err = u.email.Send(ctx, user.Email, subject, body); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// ConfirmPasswordReset atomically claims the token and sets the new password.
func (u *AuthUsecase) ConfirmPasswordReset(ctx context.Context, rawToken, newPassword string) (err error) {
	defer func() { recordAuth("password_reset_confirm", err) }()

	if r := validation.ValidatePassword(newPassword); !r.Valid {
		return domain.NewAuthError(domain.CodeWeakPassword, nil)
	}

	token, err := u.users.ClaimResetToken(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			return domain.ErrTokenInvalid
		}
		return fmt.Errorf("claim reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), u.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err = u.users.UpdatePassword(ctx, token.UserID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	u.logger.InfoContext(ctx, "password reset", "user_id", token.UserID)
	return nil
}

// DeleteAccount removes the user and everything it owns.
func (u *AuthUsecase) DeleteAccount(ctx context.Context, userID string) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}
	u.logger.InfoContext(ctx, "account deleted", "user_id", userID)
	return nil
}

func (u *AuthUsecase) issue(user *domain.User) (*Session, error) {
	now := u.now()
	exp := now.Add(u.cfg.JWTTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.cfg.JWTKey)
	if err != nil {
		return nil, fmt.Errorf("sign jwt: %w", err)
	}
	return &Session{Token: signed, ExpiresAt: exp, User: user}, nil
}

func hashToken(raw string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
}

func recordAuth(action string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrTokenInvalid):
		outcome = "invalid_token"
	default:
		outcome = domain.AuthCode(err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues(action, outcome).Inc()
}
