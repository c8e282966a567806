package repository

import "github.com/Ansup17174/randomproject/internal/domain/entity"

// CompanyRepository is the persistence port for Company and its owned
// address row. Implementations live in infrastructure. Lookups return
// (nil, nil) when nothing matches.
type CompanyRepository interface {
	// Create persists the company together with its address row.
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	// Update writes the mutable header fields and the address row in place.
	Update(company *entity.Company) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Company, error)
	// Delete removes the company; it fails with domain.ErrConflict while
	// documents still reference it.
	Delete(id string) error
}
