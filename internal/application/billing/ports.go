package billing

import (
	"context"

	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

// BillingTxRunner runs a callback inside one storage transaction with the
// document repositories bound to it. Document creation reads the latest
// document for numbering and inserts the new header plus all lines through
// these repositories; any error rolls the whole unit back.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		receiptRepo repository.ReceiptRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator renders the printable representation of an invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
