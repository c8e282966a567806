package repository

import "github.com/Ansup17174/randomproject/internal/domain/entity"

// UserRepository is the persistence port for User. Lookups return (nil, nil)
// when nothing matches.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
