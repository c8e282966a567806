package repository

import "github.com/Ansup17174/randomproject/internal/domain/entity"

// ReceiptRepository is the persistence port for Receipt headers and lines.
// Lookups return (nil, nil) when nothing matches.
type ReceiptRepository interface {
	// Create persists the header and, when present, the owned sales-point
	// address row. Lines go through CreateProduct.
	Create(receipt *entity.Receipt) error
	CreateProduct(product *entity.ReceiptProduct) error
	// GetByID loads the receipt with its products and sales point.
	GetByID(id string) (*entity.Receipt, error)
	// GetLatestByCompany returns the company's most recently created receipt
	// (creation timestamp descending), used for print number assignment.
	GetLatestByCompany(companyID string) (*entity.Receipt, error)
	// ListByOwner returns receipts of all companies owned by the user,
	// newest first, products included.
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Receipt, error)
}
