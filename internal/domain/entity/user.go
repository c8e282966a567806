package entity

import "time"

// User is an account owner. Companies and their documents are visible only to
// the user that registered them.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never the plain password after persisting
	FirstName    string
	LastName     string
	Phone        string // numeric, up to 9 digits
	DateOfBirth  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
