package billing

import (
	"context"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

// InvoicePDFUseCase renders an owned invoice as a PDF document.
type InvoicePDFUseCase struct {
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
}

// NewInvoicePDFUseCase builds the use case.
func NewInvoicePDFUseCase(
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
	generator InvoicePDFGenerator,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
		generator:   generator,
	}
}

// GenerateInvoicePDF loads the invoice, checks the requester owns its company
// and delegates rendering. Missing and foreign invoices are both not found.
func (uc *InvoicePDFUseCase) GenerateInvoicePDF(ctx context.Context, userID, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(invoice.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.OwnerID != userID {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, company)
}
