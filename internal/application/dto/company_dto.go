package dto

import (
	"fmt"
	"time"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
)

// AddressRequest is a postal address in request bodies.
type AddressRequest struct {
	Street         string `json:"street"`
	BuildingNumber string `json:"building_number"`
	PostCode       string `json:"post_code"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

// Validate checks the required address fields.
func (a AddressRequest) Validate() error {
	if a.Street == "" || a.City == "" || a.Country == "" {
		return fmt.Errorf("%w: address requires street, city and country", domain.ErrInvalidInput)
	}
	return nil
}

// ToEntity converts the request to an address value object.
func (a AddressRequest) ToEntity() entity.Address {
	return entity.Address{
		Street:         a.Street,
		BuildingNumber: a.BuildingNumber,
		PostCode:       a.PostCode,
		City:           a.City,
		Country:        a.Country,
	}
}

// AddressResponse is a postal address in response bodies.
type AddressResponse struct {
	Street         string `json:"street"`
	BuildingNumber string `json:"building_number"`
	PostCode       string `json:"post_code"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

// NewAddressResponse maps an address entity to its response form.
func NewAddressResponse(a entity.Address) AddressResponse {
	return AddressResponse{
		Street:         a.Street,
		BuildingNumber: a.BuildingNumber,
		PostCode:       a.PostCode,
		City:           a.City,
		Country:        a.Country,
	}
}

// CreateCompanyRequest is the body of POST /api/companies.
type CreateCompanyRequest struct {
	Name           string         `json:"name"`
	NIPNumber      string         `json:"nip_number"`
	CompanyAddress AddressRequest `json:"company_address"`
}

// Validate checks name, NIP format (exactly 10 numeric characters) and the
// address.
func (r CreateCompanyRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}
	if err := ValidateNIP(r.NIPNumber); err != nil {
		return err
	}
	return r.CompanyAddress.Validate()
}

// UpdateCompanyRequest is the body of PATCH /api/companies/:name. Name is
// immutable; nil fields stay unchanged.
type UpdateCompanyRequest struct {
	NIPNumber      *string         `json:"nip_number"`
	CompanyAddress *AddressRequest `json:"company_address"`
}

// Validate checks the supplied fields.
func (r UpdateCompanyRequest) Validate() error {
	if r.NIPNumber != nil {
		if err := ValidateNIP(*r.NIPNumber); err != nil {
			return err
		}
	}
	if r.CompanyAddress != nil {
		return r.CompanyAddress.Validate()
	}
	return nil
}

// CompanyResponse is a company in response bodies.
type CompanyResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NIPNumber      string          `json:"nip_number"`
	CompanyAddress AddressResponse `json:"company_address"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CompanyListResponse is a paginated company list.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// NewCompanyResponse maps a company entity to its response form.
func NewCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		NIPNumber:      c.NIP,
		CompanyAddress: NewAddressResponse(c.Address),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ValidateNIP checks a tax registration number: exactly 10 numeric
// characters.
func ValidateNIP(nip string) error {
	if len(nip) != 10 || !isNumeric(nip) {
		return fmt.Errorf("%w: invalid NIP number", domain.ErrInvalidInput)
	}
	return nil
}

// ValidatePESEL checks a personal identifier: exactly 11 numeric characters.
func ValidatePESEL(pesel string) error {
	if len(pesel) != 11 || !isNumeric(pesel) {
		return fmt.Errorf("%w: invalid PESEL number", domain.ErrInvalidInput)
	}
	return nil
}
