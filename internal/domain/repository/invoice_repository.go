package repository

import "github.com/Ansup17174/randomproject/internal/domain/entity"

// InvoiceRepository is the persistence port for Invoice headers, product
// lines and prepayment lines. Lookups return (nil, nil) when nothing
// matches.
type InvoiceRepository interface {
	// Create persists the header, its buyer address row and the accumulated
	// net/tax/gross totals. Lines go through CreateProduct/CreatePrepayment.
	Create(invoice *entity.Invoice) error
	CreateProduct(product *entity.InvoiceProduct) error
	CreatePrepayment(prepayment *entity.InvoicePrepayment) error
	// GetByID loads the invoice with products and prepayments.
	GetByID(id string) (*entity.Invoice, error)
	// GetLatestByCompany returns the company's most recently created invoice
	// (creation timestamp descending), used for number assignment.
	GetLatestByCompany(companyID string) (*entity.Invoice, error)
	// GetByNumber resolves an invoice number within one company, used to
	// validate previous_prepayment references.
	GetByNumber(companyID, invoiceNumber string) (*entity.Invoice, error)
	// ListByOwner returns invoices of all companies owned by the user,
	// newest first, lines included.
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error)
}
