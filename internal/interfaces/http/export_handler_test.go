package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansup17174/randomproject/internal/application/billing"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
	apphttp "github.com/Ansup17174/randomproject/internal/interfaces/http"
)

// exportStore backs the export repositories with fixed fixtures.
type exportStore struct {
	company  *entity.Company
	receipts []*entity.Receipt
	invoices []*entity.Invoice
}

var (
	_ repository.CompanyRepository = (*exportStore)(nil)
	_ repository.ReceiptRepository = exportReceiptRepo{}
	_ repository.InvoiceRepository = exportInvoiceRepo{}
)

func (s *exportStore) Create(c *entity.Company) error { return nil }
func (s *exportStore) Update(c *entity.Company) error { return nil }
func (s *exportStore) Delete(id string) error         { return nil }

func (s *exportStore) GetByID(id string) (*entity.Company, error) {
	if s.company != nil && s.company.ID == id {
		return s.company, nil
	}
	return nil, nil
}

func (s *exportStore) GetByName(name string) (*entity.Company, error) {
	if s.company != nil && s.company.Name == name {
		return s.company, nil
	}
	return nil, nil
}

func (s *exportStore) ListByOwner(ownerID string, limit, offset int) ([]*entity.Company, error) {
	return []*entity.Company{s.company}, nil
}

type exportReceiptRepo struct{ s *exportStore }

func (r exportReceiptRepo) Create(*entity.Receipt) error               { return nil }
func (r exportReceiptRepo) CreateProduct(*entity.ReceiptProduct) error { return nil }
func (r exportReceiptRepo) GetByID(string) (*entity.Receipt, error)    { return nil, nil }
func (r exportReceiptRepo) GetLatestByCompany(string) (*entity.Receipt, error) {
	return nil, nil
}
func (r exportReceiptRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Receipt, error) {
	if offset >= len(r.s.receipts) {
		return nil, nil
	}
	return r.s.receipts[offset:], nil
}

type exportInvoiceRepo struct{ s *exportStore }

func (r exportInvoiceRepo) Create(*entity.Invoice) error                     { return nil }
func (r exportInvoiceRepo) CreateProduct(*entity.InvoiceProduct) error       { return nil }
func (r exportInvoiceRepo) CreatePrepayment(*entity.InvoicePrepayment) error { return nil }
func (r exportInvoiceRepo) GetByID(string) (*entity.Invoice, error)          { return nil, nil }
func (r exportInvoiceRepo) GetLatestByCompany(string) (*entity.Invoice, error) {
	return nil, nil
}
func (r exportInvoiceRepo) GetByNumber(string, string) (*entity.Invoice, error) {
	return nil, nil
}
func (r exportInvoiceRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error) {
	if offset >= len(r.s.invoices) {
		return nil, nil
	}
	return r.s.invoices[offset:], nil
}

func buildExportApp() *fiber.App {
	createdAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	store := &exportStore{
		company: &entity.Company{
			ID:      "company-1",
			OwnerID: testUserID,
			Name:    "Sklep",
			Address: entity.Address{Country: "Poland"},
		},
	}
	store.receipts = []*entity.Receipt{{
		ID:        "receipt-1",
		CompanyID: "company-1",
		Currency:  "PLN",
		CreatedAt: createdAt,
		Products: []*entity.ReceiptProduct{{
			Name:      "Monitor",
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.RequireFromString("100.00"),
			VATType:   "A",
		}},
	}}
	store.invoices = []*entity.Invoice{{
		ID:         "invoice-1",
		CompanyID:  "company-1",
		Currency:   "PLN",
		CreatedAt:  createdAt,
		NetPrice:   decimal.RequireFromString("49.90"),
		TotalTax:   decimal.RequireFromString("11.48"),
		GrossPrice: decimal.RequireFromString("61.38"),
	}}

	uc := billing.NewExportUseCase(store, exportReceiptRepo{store}, exportInvoiceRepo{store})
	h := apphttp.NewExportHandler(uc)

	app := fiber.New()
	app.Get("/api/export/receipts", apphttp.AuthMiddleware(testJWTSecret), h.Receipts)
	app.Get("/api/export/invoices", apphttp.AuthMiddleware(testJWTSecret), h.Invoices)
	return app
}

func getExport(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export handler
// ──────────────────────────────────────────────────────────────────────────────

func TestExportReceipts_StreamsCSVBody(t *testing.T) {
	app := buildExportApp()
	resp, body := getExport(t, app, "/api/export/receipts")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "receipts.csv")

	want := "seller,country,created_at,currency,net_price,tax_value,gross_price\n" +
		"Sklep,Poland,2026-09-01T10:00:00Z,PLN,81.30,18.70,100.00\n"
	assert.Equal(t, want, body)
}

func TestExportInvoices_StreamsCSVBody(t *testing.T) {
	app := buildExportApp()
	resp, body := getExport(t, app, "/api/export/invoices")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "invoices.csv")

	want := "seller,country,created_at,currency,net_price,tax_value,gross_price\n" +
		"Sklep,Poland,2026-09-01T10:00:00Z,PLN,49.90,11.48,61.38\n"
	assert.Equal(t, want, body)
}
