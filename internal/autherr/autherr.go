// Package autherr turns auth error codes into sentences for end users.
package autherr

import "github.com/ErlanBelekov/fittrack/internal/domain"

// Fallback is shown for any code without a dedicated message.
const Fallback = "An error occurred. Please try again"

var messages = map[string]string{
	domain.CodeEmailInUse:     "This email is already registered",
	domain.CodeInvalidEmail:   "Please enter a valid email address",
	domain.CodeWeakPassword:   "Password is too weak",
	domain.CodeUserNotFound:   "No account found with this email",
	domain.CodeWrongPassword:  "Invalid email or password",
	domain.CodeTooManyReqs:    "Too many failed attempts. Try again later",
	domain.CodeNetworkFailure: "Connection error. Please try again",
}

// Message returns the user-facing text for code. It is defined for every
// string; unknown codes get Fallback.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return Fallback
}

// FromError returns the code carried by err together with its message.
func FromError(err error) (code, msg string) {
	code = domain.AuthCode(err)
	return code, Message(code)
}
