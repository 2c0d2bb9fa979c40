// Package common defines sentinel errors and small helpers shared by the
// scheduler's layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Input and authorization errors.
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrLoginFailed     = errors.New("login failed")
	ErrAlreadyLoggedIn = errors.New("user already logged in")
	ErrNotLoggedIn     = errors.New("not logged in")

	// Account errors.
	ErrUsernameTaken = errors.New("username taken")
	ErrWeakPassword  = errors.New("password is not strong enough")

	// Reservation errors.
	ErrVaccineUnavailable    = errors.New("vaccine not available")
	ErrNoCaregiverAvailable  = errors.New("no caregiver available")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrDuplicateAvailability = errors.New("availability already uploaded")

	// ErrNotSupported is returned by reserved commands without semantics yet.
	ErrNotSupported = errors.New("not supported")

	// ErrStorage wraps any failure of the underlying store.
	ErrStorage = errors.New("storage error")
)
