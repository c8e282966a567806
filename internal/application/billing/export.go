package billing

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

// exportBatchSize is how many documents each repository page fetches while
// streaming an export.
const exportBatchSize = 200

var exportHeader = []string{"seller", "country", "created_at", "currency", "net_price", "tax_value", "gross_price"}

// ExportUseCase streams the user's billing documents as CSV. One row per
// document: seller name, seller country, creation timestamp, currency and the
// net/tax/gross totals.
type ExportUseCase struct {
	companyRepo repository.CompanyRepository
	receiptRepo repository.ReceiptRepository
	invoiceRepo repository.InvoiceRepository
}

// NewExportUseCase builds the use case.
func NewExportUseCase(
	companyRepo repository.CompanyRepository,
	receiptRepo repository.ReceiptRepository,
	invoiceRepo repository.InvoiceRepository,
) *ExportUseCase {
	return &ExportUseCase{
		companyRepo: companyRepo,
		receiptRepo: receiptRepo,
		invoiceRepo: invoiceRepo,
	}
}

// ExportReceipts writes all of the user's receipts to w. Receipt totals are
// recomputed from the lines; the net column is the gross minus the extracted
// VAT.
func (uc *ExportUseCase) ExportReceipts(ctx context.Context, userID string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	companies := newCompanyCache(uc.companyRepo)
	for offset := 0; ; offset += exportBatchSize {
		receipts, err := uc.receiptRepo.ListByOwner(userID, exportBatchSize, offset)
		if err != nil {
			return err
		}
		if len(receipts) == 0 {
			break
		}
		for _, r := range receipts {
			company, err := companies.get(r.CompanyID)
			if err != nil {
				return err
			}
			if err := cw.Write(receiptExportRow(r, company)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportInvoices writes all of the user's invoices to w, using the totals
// persisted at creation.
func (uc *ExportUseCase) ExportInvoices(ctx context.Context, userID string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	companies := newCompanyCache(uc.companyRepo)
	for offset := 0; ; offset += exportBatchSize {
		invoices, err := uc.invoiceRepo.ListByOwner(userID, exportBatchSize, offset)
		if err != nil {
			return err
		}
		if len(invoices) == 0 {
			break
		}
		for _, inv := range invoices {
			company, err := companies.get(inv.CompanyID)
			if err != nil {
				return err
			}
			if err := cw.Write(invoiceExportRow(inv, company)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func receiptExportRow(r *entity.Receipt, company *entity.Company) []string {
	lines := make([]vat.ReceiptLine, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, vat.ReceiptLine{
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			DiscountValue: p.DiscountValue,
			Bracket:       vat.Bracket(p.VATType),
		})
	}
	totals := vat.AggregateReceipt(lines)
	net := totals.GrossPrice.Sub(totals.TotalTax)
	return []string{
		company.Name,
		company.Address.Country,
		r.CreatedAt.Format(time.RFC3339),
		r.Currency,
		net.StringFixed(2),
		totals.TotalTax.StringFixed(2),
		totals.GrossPrice.StringFixed(2),
	}
}

func invoiceExportRow(inv *entity.Invoice, company *entity.Company) []string {
	return []string{
		company.Name,
		company.Address.Country,
		inv.CreatedAt.Format(time.RFC3339),
		inv.Currency,
		inv.NetPrice.StringFixed(2),
		inv.TotalTax.StringFixed(2),
		inv.GrossPrice.StringFixed(2),
	}
}
