package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenInvalid  = errors.New("token is invalid or expired")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrEmailTaken    = errors.New("email already registered")
	ErrTooManyLogins = errors.New("too many login attempts")
)

// Auth error codes, in the format the web client already understands.
const (
	CodeEmailInUse     = "auth/email-already-in-use"
	CodeInvalidEmail   = "auth/invalid-email"
	CodeWeakPassword   = "auth/weak-password"
	CodeUserNotFound   = "auth/user-not-found"
	CodeWrongPassword  = "auth/wrong-password"
	CodeTooManyReqs    = "auth/too-many-requests"
	CodeNetworkFailure = "auth/network-request-failed"
	CodeUnknown        = "auth/unknown"
)

// AuthError is returned by the auth usecase for failures the client is
// expected to explain to the user. Err is the underlying sentinel, if any.
type AuthError struct {
	Code string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *AuthError) Unwrap() error { return e.Err }

func NewAuthError(code string, err error) *AuthError {
	return &AuthError{Code: code, Err: err}
}

// AuthCode extracts the auth code carried by err, or CodeUnknown.
func AuthCode(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
