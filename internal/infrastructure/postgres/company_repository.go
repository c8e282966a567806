package postgres

import (
	"context"
	"fmt"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port over PostgreSQL. Each
// company owns exactly one row in addresses, inserted and updated together
// with the company via data-modifying CTEs so the pair stays consistent
// without an explicit transaction.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `
	c.id, c.owner_id, c.name, c.nip, c.created_at, c.updated_at,
	a.id, a.street, a.building_number, a.post_code, a.city, a.country`

// Create persists the company with its address row.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		WITH addr AS (
			INSERT INTO addresses (id, street, building_number, post_code, city, country)
			VALUES ($5, $6, $7, $8, $9, $10)
		)
		INSERT INTO companies (id, owner_id, name, nip, address_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $11, $12)`
	a := company.Address
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.OwnerID, company.Name, company.NIP,
		a.ID, a.Street, a.BuildingNumber, a.PostCode, a.City, a.Country,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company with its address.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getBy("c.id", id)
}

// GetByName fetches a company by its unique name.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.getBy("c.name", name)
}

func (r *CompanyRepo) getBy(column, value string) (*entity.Company, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies c JOIN addresses a ON a.id = c.address_id
		WHERE %s = $1`, companyColumns, column)
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.NIP, &c.CreatedAt, &c.UpdatedAt,
		&c.Address.ID, &c.Address.Street, &c.Address.BuildingNumber,
		&c.Address.PostCode, &c.Address.City, &c.Address.Country,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update writes the mutable header fields and the address row in place.
// Name is immutable and not part of the statement.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		WITH addr AS (
			UPDATE addresses SET street = $4, building_number = $5, post_code = $6, city = $7, country = $8
			WHERE id = (SELECT address_id FROM companies WHERE id = $1)
		)
		UPDATE companies SET nip = $2, updated_at = $3 WHERE id = $1`
	a := company.Address
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.NIP, company.UpdatedAt,
		a.Street, a.BuildingNumber, a.PostCode, a.City, a.Country,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's companies with pagination, newest first.
func (r *CompanyRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Company, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies c JOIN addresses a ON a.id = c.address_id
		WHERE c.owner_id = $1
		ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`, companyColumns)
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Name, &c.NIP, &c.CreatedAt, &c.UpdatedAt,
			&c.Address.ID, &c.Address.Street, &c.Address.BuildingNumber,
			&c.Address.PostCode, &c.Address.City, &c.Address.Country,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete removes the company and its address row. Receipts and invoices
// reference companies with ON DELETE RESTRICT, so a company with documents
// fails with domain.ErrConflict.
func (r *CompanyRepo) Delete(id string) error {
	query := `
		WITH doomed AS (
			DELETE FROM companies WHERE id = $1 RETURNING address_id
		)
		DELETE FROM addresses WHERE id IN (SELECT address_id FROM doomed)`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		if isRestrictViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
