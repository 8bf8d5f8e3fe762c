package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/ErlanBelekov/fittrack/internal/validation"
	"github.com/gin-gonic/gin"
)

const msgResetSent = "Password reset email sent. Check your inbox"

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.Session, error)
	Login(ctx context.Context, email, password string) (*usecase.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, rawToken, newPassword string) error
	DeleteAccount(ctx context.Context, userID string) error
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type sessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	UserID    string `json:"uid"`
	Email     string `json:"email"`
}

func newSessionResponse(s *usecase.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Unix(),
		UserID:    s.User.ID,
		Email:     s.User.Email,
	}
}

// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var form validation.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}
	if errs := form.Validate(); !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	sess, err := h.authUsecase.Signup(c.Request.Context(), usecase.SignupInput{
		Email:    form.Email,
		FullName: form.FullName,
		Password: form.Password,
	})
	if err != nil {
		respondAuthError(c, h.logger, "signup", err)
		return
	}
	c.JSON(http.StatusCreated, newSessionResponse(sess))
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var form validation.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}
	if errs := form.Validate(); !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	sess, err := h.authUsecase.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		respondAuthError(c, h.logger, "login", err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(sess))
}

// POST /auth/password-reset
// Always returns 200 for a well-formed email to avoid revealing whether it exists.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var form validation.ResetRequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}
	if errs := form.Validate(); !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	if err := h.authUsecase.RequestPasswordReset(c.Request.Context(), form.Email); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "request password reset", "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": msgResetSent})
}

// POST /auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var form validation.ResetConfirmForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}
	if form.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTokenInvalid})
		return
	}
	if errs := form.Validate(); !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	err := h.authUsecase.ConfirmPasswordReset(c.Request.Context(), form.Token, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errTokenInvalid})
			return
		}
		respondAuthError(c, h.logger, "confirm password reset", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authUsecase.DeleteAccount(c.Request.Context(), userID(c)); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errAccountNotFound})
			return
		}
		respondInternal(c, h.logger, "delete account", err)
		return
	}
	c.Status(http.StatusNoContent)
}
