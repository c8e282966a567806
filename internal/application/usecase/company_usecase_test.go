package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansup17174/randomproject/internal/application/dto"
	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

type fakeCompanyRepo struct {
	companies  []*entity.Company
	referenced map[string]bool // company ID -> has documents
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies = append(r.companies, c)
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error { return nil }

func (r *fakeCompanyRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	if r.referenced[id] {
		return domain.ErrConflict
	}
	for i, c := range r.companies {
		if c.ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return nil
}

func createRequest(name string) dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:      name,
		NIPNumber: "1234567890",
		CompanyAddress: dto.AddressRequest{
			Street:         "Polna",
			BuildingNumber: "1",
			PostCode:       "00-001",
			City:           "Warszawa",
			Country:        "Poland",
		},
	}
}

func TestCompanyCreate_NameUniqueSystemWide(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := NewCompanyUseCase(repo)

	created, err := uc.Create("owner-1", createRequest("Firma"))
	require.NoError(t, err)
	assert.Equal(t, "Firma", created.Name)
	assert.NotEmpty(t, created.ID)

	// Even another owner cannot reuse the name.
	_, err = uc.Create("owner-2", createRequest("Firma"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyCreate_RejectsBadNIP(t *testing.T) {
	uc := NewCompanyUseCase(&fakeCompanyRepo{})

	for _, nip := range []string{"", "123", "12345678901", "12345678ab"} {
		req := createRequest("Firma")
		req.NIPNumber = nip
		_, err := uc.Create("owner-1", req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "NIP %q", nip)
	}
}

func TestCompanyGetByName_ForeignCompanyIsNotFound(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := NewCompanyUseCase(repo)
	_, err := uc.Create("owner-1", createRequest("Firma"))
	require.NoError(t, err)

	_, err = uc.GetByName("owner-2", "Firma")
	assert.ErrorIs(t, err, domain.ErrNotFound, "foreign company looks missing")

	_, err = uc.GetByName("owner-1", "Nieistniejaca")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByName("owner-1", "Firma")
	require.NoError(t, err)
	assert.Equal(t, "Firma", got.Name)
}

func TestCompanyUpdate_ChangesNIPAndAddressOnly(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := NewCompanyUseCase(repo)
	_, err := uc.Create("owner-1", createRequest("Firma"))
	require.NoError(t, err)

	newNIP := "0987654321"
	updated, err := uc.Update("owner-1", "Firma", dto.UpdateCompanyRequest{NIPNumber: &newNIP})
	require.NoError(t, err)
	assert.Equal(t, "0987654321", updated.NIPNumber)
	assert.Equal(t, "Firma", updated.Name)
}

func TestCompanyDelete_BlockedWhileReferenced(t *testing.T) {
	repo := &fakeCompanyRepo{referenced: map[string]bool{}}
	uc := NewCompanyUseCase(repo)
	created, err := uc.Create("owner-1", createRequest("Firma"))
	require.NoError(t, err)

	repo.referenced[created.ID] = true
	err = uc.Delete("owner-1", "Firma")
	assert.ErrorIs(t, err, domain.ErrConflict)

	repo.referenced[created.ID] = false
	require.NoError(t, uc.Delete("owner-1", "Firma"))

	_, err = uc.GetByName("owner-1", "Firma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
