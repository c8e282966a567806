package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// ErrInconsistentNumbering marks corrupted stored document numbers.
	// Invoice numbers are write-once, so hitting this means prior state was
	// tampered with; it is reported as an internal failure, never as a
	// user-actionable error.
	ErrInconsistentNumbering = errors.New("inconsistent document numbering")
)
