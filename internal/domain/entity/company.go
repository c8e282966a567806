package entity

import "time"

// Company represents a seller registered by an owner user. Name is unique
// across the system; the address row is owned by the company and mutated only
// through the company update path.
type Company struct {
	ID        string
	OwnerID   string
	Name      string
	NIP       string // tax registration number, exactly 10 numeric characters
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
