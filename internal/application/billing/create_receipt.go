package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ansup17174/randomproject/internal/application/dto"
	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/numbering"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

// CreateReceiptUseCase creates receipts: assigns the daily-resetting print
// number and persists the header with all lines in one transaction.
type CreateReceiptUseCase struct {
	txRunner    BillingTxRunner
	companyRepo repository.CompanyRepository
	receiptRepo repository.ReceiptRepository
	now         func() time.Time
}

// NewCreateReceiptUseCase builds the use case.
func NewCreateReceiptUseCase(
	txRunner BillingTxRunner,
	companyRepo repository.CompanyRepository,
	receiptRepo repository.ReceiptRepository,
) *CreateReceiptUseCase {
	return &CreateReceiptUseCase{
		txRunner:    txRunner,
		companyRepo: companyRepo,
		receiptRepo: receiptRepo,
		now:         time.Now,
	}
}

// CreateReceipt validates the draft, assigns the print number from the
// company's latest receipt inside the same transaction that inserts the new
// one, and returns the persisted receipt enriched with computed figures.
func (uc *CreateReceiptUseCase) CreateReceipt(ctx context.Context, userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	company, err := ownedCompanyByName(uc.companyRepo, userID, in.CompanyName)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	receipt := &entity.Receipt{
		ID:             uuid.New().String(),
		CompanyID:      company.ID,
		Header:         in.Header,
		CheckoutNumber: in.CheckoutNumber,
		BuyerNIP:       in.BuyerNIP,
		Currency:       in.Currency,
		CreatedAt:      now,
	}
	if in.SalesPoint != nil {
		sp := in.SalesPoint.ToEntity()
		sp.ID = uuid.New().String()
		receipt.SalesPoint = &sp
	}
	for i, p := range in.Products {
		bracket, err := vat.ParseBracket(p.VatType)
		if err != nil {
			return nil, err
		}
		receipt.Products = append(receipt.Products, &entity.ReceiptProduct{
			ID:            uuid.New().String(),
			ReceiptID:     receipt.ID,
			Position:      i + 1,
			Name:          p.Name,
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			VATType:       string(bracket),
			DiscountValue: p.DiscountValue,
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(receiptRepo repository.ReceiptRepository, _ repository.InvoiceRepository) error {
		last, err := receiptRepo.GetLatestByCompany(company.ID)
		if err != nil {
			return err
		}
		receipt.PrintNumber = numbering.NextPrintNumber(last, now)
		receipt.ReceiptNumber = receipt.PrintNumber
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		for _, product := range receipt.Products {
			if err := receiptRepo.CreateProduct(product); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewReceiptResponse(receipt, company), nil
}

// GetReceipt fetches one of the user's receipts with computed aggregates.
func (uc *CreateReceiptUseCase) GetReceipt(ctx context.Context, userID, id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(receipt.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.OwnerID != userID {
		return nil, domain.ErrNotFound
	}
	return dto.NewReceiptResponse(receipt, company), nil
}

// ListReceipts returns the user's receipts, newest first.
func (uc *CreateReceiptUseCase) ListReceipts(ctx context.Context, userID string, page dto.PageRequest) (*dto.ReceiptListResponse, error) {
	page.DefaultPage()
	receipts, err := uc.receiptRepo.ListByOwner(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	companies := newCompanyCache(uc.companyRepo)
	items := make([]dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		company, err := companies.get(r.CompanyID)
		if err != nil {
			return nil, err
		}
		items = append(items, *dto.NewReceiptResponse(r, company))
	}
	return &dto.ReceiptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
