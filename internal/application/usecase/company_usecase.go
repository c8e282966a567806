package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ansup17174/randomproject/internal/application/dto"
	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

// CompanyUseCase implements company CRUD scoped to the owning user. A
// company that exists but belongs to someone else behaves exactly like a
// missing one, so ownership cannot be probed by name.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with the persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a company for the user. The display name is unique
// system-wide; an existing name yields domain.ErrDuplicate.
func (uc *CompanyUseCase) Create(ownerID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	address := in.CompanyAddress.ToEntity()
	address.ID = uuid.New().String()
	company := &entity.Company{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		NIP:       in.NIPNumber,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// GetByName fetches one of the user's companies by display name.
func (uc *CompanyUseCase) GetByName(ownerID, name string) (*dto.CompanyResponse, error) {
	company, err := uc.ownedCompany(ownerID, name)
	if err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// List returns the user's companies.
func (uc *CompanyUseCase) List(ownerID string, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByOwner(ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.NewCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update changes the mutable fields (NIP, address) of one of the user's
// companies. The name never changes. Header and address are written as one
// unit by the repository.
func (uc *CompanyUseCase) Update(ownerID, name string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	company, err := uc.ownedCompany(ownerID, name)
	if err != nil {
		return nil, err
	}
	if in.NIPNumber != nil {
		company.NIP = *in.NIPNumber
	}
	if in.CompanyAddress != nil {
		address := in.CompanyAddress.ToEntity()
		address.ID = company.Address.ID
		company.Address = address
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// Delete removes one of the user's companies. Companies still referenced by
// documents cannot be deleted; the repository reports domain.ErrConflict.
func (uc *CompanyUseCase) Delete(ownerID, name string) error {
	company, err := uc.ownedCompany(ownerID, name)
	if err != nil {
		return err
	}
	return uc.repo.Delete(company.ID)
}

// ownedCompany resolves a company by name and checks ownership; foreign and
// missing companies are indistinguishable to the caller.
func (uc *CompanyUseCase) ownedCompany(ownerID, name string) (*entity.Company, error) {
	company, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if company == nil || company.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return company, nil
}
