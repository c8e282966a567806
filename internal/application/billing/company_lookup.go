package billing

import (
	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

// ownedCompanyByName resolves a company by display name for a given owner.
// Missing and foreign companies are both reported as domain.ErrNotFound.
func ownedCompanyByName(repo repository.CompanyRepository, ownerID, name string) (*entity.Company, error) {
	company, err := repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if company == nil || company.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// companyCache memoizes company lookups by ID while mapping a batch of
// documents, so list and export paths do one fetch per company instead of
// one per document.
type companyCache struct {
	repo repository.CompanyRepository
	byID map[string]*entity.Company
}

func newCompanyCache(repo repository.CompanyRepository) *companyCache {
	return &companyCache{repo: repo, byID: make(map[string]*entity.Company)}
}

func (c *companyCache) get(id string) (*entity.Company, error) {
	if company, ok := c.byID[id]; ok {
		return company, nil
	}
	company, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	c.byID[id] = company
	return company, nil
}
