package domain

import "errors"

var (
	// ErrInvalidEmail indicates the email address failed local validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort indicates the password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrPasswordMismatch indicates the confirmation does not match the password.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmptyCode indicates a blank sponsor code was submitted.
	ErrEmptyCode = errors.New("sponsor code cannot be empty")

	// ErrNotAuthenticated indicates the operation requires a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRequestInFlight indicates a previous auth request is still being
	// processed; the caller must wait for it to settle.
	ErrRequestInFlight = errors.New("another request is already in progress")
)
