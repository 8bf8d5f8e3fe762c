package handler

import (
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/fittrack/internal/autherr"
	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/transport/http/middleware"
	"github.com/ErlanBelekov/fittrack/internal/validation"
	"github.com/gin-gonic/gin"
)

const (
	errInternalServer   = "Internal server error"
	errTokenInvalid     = "Token is invalid or expired"
	errWorkoutNotFound  = "Workout not found"
	errMealNotFound     = "Meal not found"
	errProfileNotFound  = "Profile not found"
	errSettingsNotFound = "Settings not found"
	errAccountNotFound  = "Account not found"
)

var authStatus = map[string]int{
	domain.CodeEmailInUse:    http.StatusConflict,
	domain.CodeInvalidEmail:  http.StatusBadRequest,
	domain.CodeWeakPassword:  http.StatusBadRequest,
	domain.CodeUserNotFound:  http.StatusUnauthorized,
	domain.CodeWrongPassword: http.StatusUnauthorized,
	domain.CodeTooManyReqs:   http.StatusTooManyRequests,
}

// respondAuthError writes {"code", "error"} with the user-facing message for
// the auth code carried by err. Errors without a known code are logged and
// returned as 500 with the fallback message.
func respondAuthError(c *gin.Context, logger *slog.Logger, op string, err error) {
	code, msg := autherr.FromError(err)
	status, ok := authStatus[code]
	if !ok {
		logger.ErrorContext(c.Request.Context(), op, "error", err)
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"code": code, "error": msg})
}

func respondValidation(c *gin.Context, errs validation.FieldErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

func respondBindError(c *gin.Context, err error) {
	respondValidation(c, validation.ToFieldErrors(err))
}

func respondInternal(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.ErrorContext(c.Request.Context(), op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
}

// userID is set by middleware.Auth on every protected route.
func userID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
