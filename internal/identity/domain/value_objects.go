package domain

import (
	"regexp"
	"strings"
)

// MinPasswordLength is enforced locally before any network round trip.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email represents a validated, normalized email address.
type Email struct {
	value string
}

// NewEmail creates a validated email address.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return Email{}, ErrInvalidEmail
	}
	if !emailRegex.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

// String returns the email string.
func (e Email) String() string {
	return e.value
}

// Equals checks if two emails are equal.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// Password represents a credential that satisfies the local length policy.
// The backend enforces the same minimum; validating here avoids a wasted
// round trip.
type Password struct {
	value string
}

// NewPassword validates a raw password against the local policy.
func NewPassword(value string) (Password, error) {
	if len(value) < MinPasswordLength {
		return Password{}, ErrPasswordTooShort
	}
	return Password{value: value}, nil
}

// String returns the raw password for transmission.
func (p Password) String() string {
	return p.value
}
