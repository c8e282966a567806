package dto

import (
	"fmt"
	"time"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// Validate checks registration fields: a required numeric phone of at most
// 9 digits and a date of birth between 1900-01-01 and today.
func (r RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	if r.Phone == "" {
		return fmt.Errorf("%w: phone number is required", domain.ErrInvalidInput)
	}
	if !isNumeric(r.Phone) || len(r.Phone) > 9 {
		return fmt.Errorf("%w: invalid phone number", domain.ErrInvalidInput)
	}
	if _, err := r.ParseDateOfBirth(); err != nil {
		return err
	}
	return nil
}

// ParseDateOfBirth parses and range-checks the date of birth.
func (r RegisterRequest) ParseDateOfBirth() (time.Time, error) {
	if r.DateOfBirth == "" {
		return time.Time{}, fmt.Errorf("%w: date_of_birth is required", domain.ErrInvalidInput)
	}
	dob, err := time.Parse(DateLayout, r.DateOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	min := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	if !dob.After(min) || !dob.Before(time.Now()) {
		return time.Time{}, fmt.Errorf("%w: invalid date of birth", domain.ErrInvalidInput)
	}
	return dob, nil
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is a user in response bodies.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its response form.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		DateOfBirth: u.DateOfBirth.Format(DateLayout),
		CreatedAt:   u.CreatedAt,
	}
}
