// Package validation holds the field rules shared by the auth, profile and
// settings forms. Every validator is pure and total: it returns a Result for
// any input and never panics.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	MinPasswordLength = 8
	MinFullNameLength = 2
	MaxFullNameLength = 50
)

const (
	MsgPasswordTooShort  = "Password must be at least 8 characters"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordNumber    = "Password must contain at least one number"
	MsgFullNameTooShort  = "Full name must be at least 2 characters"
	MsgFullNameTooLong   = "Full name must be less than 50 characters"
	MsgInvalidEmail      = "Please enter a valid email address"
)

// emailPattern is local@domain.tld where no part contains '@' or whitespace.
// Whitespace follows the ECMAScript definition so addresses are judged the
// same way the browser form judges them.
var emailPattern = regexp.MustCompile(
	`^[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+@[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+\.[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+$`,
)

// Result is the outcome of a single field check. Message is empty iff Valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

var ok = Result{Valid: true}

func fail(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// ValidateEmail checks the local@domain.tld shape only; it is a heuristic,
// not RFC 5322.
func ValidateEmail(s string) Result {
	if !emailPattern.MatchString(s) {
		return fail(MsgInvalidEmail)
	}
	return ok
}

// textLength counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane counts as two. Browser form limits measure the same way.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// isFormSpace is the whitespace set of the email pattern: Unicode Zs, the
// ASCII controls \t \n \v \f \r, line and paragraph separators and BOM.
// NEL (U+0085) is not part of it.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimName strips leading and trailing form whitespace, the way names are
// trimmed before they are measured.
func TrimName(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

// ValidatePassword applies the strength rules in order and reports the
// first one that fails. Character classes are ASCII only.
func ValidatePassword(s string) Result {
	if textLength(s) < MinPasswordLength {
		return fail(MsgPasswordTooShort)
	}
	var upper, lower, digit bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case 'A' <= c && c <= 'Z':
			upper = true
		case 'a' <= c && c <= 'z':
			lower = true
		case '0' <= c && c <= '9':
			digit = true
		}
	}
	switch {
	case !upper:
		return fail(MsgPasswordUppercase)
	case !lower:
		return fail(MsgPasswordLowercase)
	case !digit:
		return fail(MsgPasswordNumber)
	}
	return ok
}

// ValidateFullName accepts any trimmed name of 2 to 50 characters.
func ValidateFullName(s string) Result {
	n := textLength(TrimName(s))
	if n < MinFullNameLength {
		return fail(MsgFullNameTooShort)
	}
	if n > MaxFullNameLength {
		return fail(MsgFullNameTooLong)
	}
	return ok
}
