package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ansup17174/randomproject/internal/application/dto"
	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/numbering"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

// CreateInvoiceUseCase creates invoices: assigns the monthly-resetting
// FV number, validates prepayment linkage and persists header, product lines
// and prepayment lines with the accumulated totals in one transaction.
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// CreateInvoice validates the draft and writes it atomically. The invoice
// number comes from the company's latest invoice read inside the same
// transaction; a malformed stored number aborts with an internal
// inconsistency error rather than anything user-facing.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	company, err := ownedCompanyByName(uc.companyRepo, userID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	dateFinished, err := in.ParseDateFinished()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	buyerAddress := in.BuyerAddress.ToEntity()
	buyerAddress.ID = uuid.New().String()
	invoice := &entity.Invoice{
		ID:                 uuid.New().String(),
		CompanyID:          company.ID,
		BuyerName:          in.BuyerName,
		BuyerNIP:           in.BuyerNIP,
		BuyerPESEL:         in.BuyerPESEL,
		BuyerAddress:       buyerAddress,
		Currency:           in.Currency,
		IsPaid:             in.IsPaid,
		IsPrepayment:       in.IsPrepayment,
		PreviousPrepayment: in.PreviousPrepayment,
		DateFinished:       dateFinished,
		CreatedAt:          now,
	}
	lines := make([]vat.InvoiceLine, 0, len(in.Products))
	for i, p := range in.Products {
		invoice.Products = append(invoice.Products, &entity.InvoiceProduct{
			ID:            uuid.New().String(),
			InvoiceID:     invoice.ID,
			Position:      i + 1,
			Name:          p.Name,
			Unit:          p.Unit,
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			VATTax:        p.VatTax,
			DiscountValue: p.DiscountValue,
		})
		lines = append(lines, vat.InvoiceLine{
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			DiscountValue: p.DiscountValue,
			VATRate:       p.VatTax,
		})
	}
	if in.IsPrepayment {
		for i, p := range in.Prepayments {
			invoice.Prepayments = append(invoice.Prepayments, &entity.InvoicePrepayment{
				ID:        uuid.New().String(),
				InvoiceID: invoice.ID,
				Position:  i + 1,
				NetPrice:  p.NetPrice,
				VATTax:    p.VatTax,
			})
		}
	}
	totals := vat.AggregateInvoice(lines)
	invoice.NetPrice = totals.TotalNetPrice
	invoice.TotalTax = totals.TotalTaxValue
	invoice.GrossPrice = totals.TotalGross

	err = uc.txRunner.RunBilling(ctx, func(_ repository.ReceiptRepository, invoiceRepo repository.InvoiceRepository) error {
		if in.PreviousPrepayment != "" {
			previous, err := invoiceRepo.GetByNumber(company.ID, in.PreviousPrepayment)
			if err != nil {
				return err
			}
			if previous == nil || !previous.IsPrepayment {
				return fmt.Errorf("%w: prepayment invoice %q", domain.ErrNotFound, in.PreviousPrepayment)
			}
		}
		last, err := invoiceRepo.GetLatestByCompany(company.ID)
		if err != nil {
			return err
		}
		number, err := numbering.NextInvoiceNumber(last, now)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, product := range invoice.Products {
			if err := invoiceRepo.CreateProduct(product); err != nil {
				return err
			}
		}
		for _, prepayment := range invoice.Prepayments {
			if err := invoiceRepo.CreatePrepayment(prepayment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(invoice, company), nil
}

// GetInvoice fetches one of the user's invoices with computed aggregates.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	invoice, company, err := uc.ownedInvoice(userID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(invoice, company), nil
}

// ListInvoices returns the user's invoices, newest first.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, userID string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.ListByOwner(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	companies := newCompanyCache(uc.companyRepo)
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		company, err := companies.get(inv.CompanyID)
		if err != nil {
			return nil, err
		}
		items = append(items, *dto.NewInvoiceResponse(inv, company))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ownedInvoice loads an invoice and checks the owner through its company.
func (uc *CreateInvoiceUseCase) ownedInvoice(userID, id string) (*entity.Invoice, *entity.Company, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(invoice.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil || company.OwnerID != userID {
		return nil, nil, domain.ErrNotFound
	}
	return invoice, company, nil
}
