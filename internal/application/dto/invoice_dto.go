package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

// InvoiceProductRequest is one product line of an invoice creation body.
type InvoiceProductRequest struct {
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	VatTax        decimal.Decimal `json:"vat_tax"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// Validate checks line fields.
func (r InvoiceProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if r.Quantity.IsNegative() || r.UnitPrice.IsNegative() || r.DiscountValue.IsNegative() || r.VatTax.IsNegative() {
		return fmt.Errorf("%w: quantity, unit_price, discount_value and vat_tax must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

// InvoicePrepaymentRequest is one prepayment line of an invoice creation
// body.
type InvoicePrepaymentRequest struct {
	NetPrice decimal.Decimal `json:"net_price"`
	VatTax   decimal.Decimal `json:"vat_tax"`
}

// Validate checks the prepayment amounts.
func (r InvoicePrepaymentRequest) Validate() error {
	if r.NetPrice.IsNegative() || r.VatTax.IsNegative() {
		return fmt.Errorf("%w: net_price and vat_tax must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

// CreateInvoiceRequest is the body of POST /api/invoices.
type CreateInvoiceRequest struct {
	CompanyName        string                     `json:"company_name"`
	BuyerName          string                     `json:"buyer_name"`
	BuyerNIP           string                     `json:"buyer_nip,omitempty"`
	BuyerPESEL         string                     `json:"buyer_pesel,omitempty"`
	BuyerAddress       AddressRequest             `json:"buyer_address"`
	DateFinished       string                     `json:"date_finished"`
	Currency           string                     `json:"currency"`
	IsPaid             bool                       `json:"is_paid"`
	IsPrepayment       bool                       `json:"is_prepayment"`
	PreviousPrepayment string                     `json:"previous_prepayment,omitempty"`
	Products           []InvoiceProductRequest    `json:"products"`
	Prepayments        []InvoicePrepaymentRequest `json:"prepayments,omitempty"`
}

// Validate enforces the invoice creation contract: buyer identified by
// exactly one of NIP/PESEL, a parsable finish date, at least one product,
// and prepayment lines present exactly when is_prepayment is set.
func (r CreateInvoiceRequest) Validate() error {
	if r.CompanyName == "" {
		return fmt.Errorf("%w: company_name is required", domain.ErrInvalidInput)
	}
	if r.Currency == "" {
		return fmt.Errorf("%w: currency is required", domain.ErrInvalidInput)
	}
	if len(r.Products) == 0 {
		return fmt.Errorf("%w: at least one product is required", domain.ErrInvalidInput)
	}
	switch {
	case r.BuyerNIP != "" && r.BuyerPESEL != "":
		return fmt.Errorf("%w: either buyer_nip or buyer_pesel must be included, not both", domain.ErrInvalidInput)
	case r.BuyerNIP == "" && r.BuyerPESEL == "":
		return fmt.Errorf("%w: either buyer_nip or buyer_pesel must be included", domain.ErrInvalidInput)
	case r.BuyerNIP != "":
		if err := ValidateNIP(r.BuyerNIP); err != nil {
			return err
		}
	default:
		if err := ValidatePESEL(r.BuyerPESEL); err != nil {
			return err
		}
	}
	if _, err := r.ParseDateFinished(); err != nil {
		return err
	}
	if err := r.BuyerAddress.Validate(); err != nil {
		return err
	}
	if r.IsPrepayment && len(r.Prepayments) == 0 {
		return fmt.Errorf("%w: a prepayment invoice requires at least one prepayment line", domain.ErrInvalidInput)
	}
	for _, p := range r.Products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, p := range r.Prepayments {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseDateFinished parses the finish date (YYYY-MM-DD).
func (r CreateInvoiceRequest) ParseDateFinished() (time.Time, error) {
	if r.DateFinished == "" {
		return time.Time{}, fmt.Errorf("%w: date_finished is required", domain.ErrInvalidInput)
	}
	t, err := time.Parse(DateLayout, r.DateFinished)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date_finished must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return t, nil
}

// InvoiceProductResponse is one invoice line enriched with computed figures.
type InvoiceProductResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Unit               string          `json:"unit"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	VatTax             decimal.Decimal `json:"vat_tax"`
	DiscountValue      decimal.Decimal `json:"discount_value"`
	NetPrice           decimal.Decimal `json:"net_price"`
	TaxValue           decimal.Decimal `json:"tax_value"`
	GrossPrice         decimal.Decimal `json:"gross_price"`
	TotalDiscountValue decimal.Decimal `json:"total_discount_value"`
}

// InvoicePrepaymentResponse is one prepayment line with computed figures.
type InvoicePrepaymentResponse struct {
	ID         string          `json:"id"`
	NetPrice   decimal.Decimal `json:"net_price"`
	VatTax     decimal.Decimal `json:"vat_tax"`
	TaxValue   decimal.Decimal `json:"tax_value"`
	GrossPrice decimal.Decimal `json:"gross_price"`
}

// RateTotalsResponse is one per-rate slice of a tax breakdown.
type RateTotalsResponse struct {
	TotalNetPrice   decimal.Decimal `json:"total_net_price"`
	TaxValue        decimal.Decimal `json:"tax_value"`
	TotalGrossPrice decimal.Decimal `json:"total_gross_price"`
}

// TaxDataResponse is the invoice tax breakdown: running totals plus
// per-VAT-rate buckets keyed by the numeric rate.
type TaxDataResponse struct {
	TotalNetPrice decimal.Decimal               `json:"total_net_price"`
	TotalTaxValue decimal.Decimal               `json:"total_tax_value"`
	Rates         map[string]RateTotalsResponse `json:"rates"`
}

func newTaxDataResponse(t vat.InvoiceTotals) *TaxDataResponse {
	resp := &TaxDataResponse{
		TotalNetPrice: t.TotalNetPrice,
		TotalTaxValue: t.TotalTaxValue,
		Rates:         make(map[string]RateTotalsResponse, len(t.ByRate)),
	}
	for rate, bucket := range t.ByRate {
		resp.Rates[rate] = RateTotalsResponse{
			TotalNetPrice:   bucket.TotalNetPrice,
			TaxValue:        bucket.TaxValue,
			TotalGrossPrice: bucket.TotalGrossPrice,
		}
	}
	return resp
}

// InvoiceResponse is an invoice enriched with computed aggregates.
// PrepaymentsData is null unless the invoice is a prepayment invoice.
type InvoiceResponse struct {
	ID                 string                      `json:"id"`
	Company            *CompanyResponse            `json:"company,omitempty"`
	InvoiceNumber      string                      `json:"invoice_number"`
	BuyerName          string                      `json:"buyer_name"`
	BuyerNIP           string                      `json:"buyer_nip,omitempty"`
	BuyerPESEL         string                      `json:"buyer_pesel,omitempty"`
	BuyerAddress       AddressResponse             `json:"buyer_address"`
	Currency           string                      `json:"currency"`
	IsPaid             bool                        `json:"is_paid"`
	IsPrepayment       bool                        `json:"is_prepayment"`
	PreviousPrepayment string                      `json:"previous_prepayment,omitempty"`
	DateFinished       string                      `json:"date_finished"`
	DateCreated        time.Time                   `json:"date_created"`
	Products           []InvoiceProductResponse    `json:"products"`
	Prepayments        []InvoicePrepaymentResponse `json:"prepayments,omitempty"`
	NetPrice           decimal.Decimal             `json:"net_price"`
	TotalTax           decimal.Decimal             `json:"total_tax"`
	GrossPrice         decimal.Decimal             `json:"gross_price"`
	TaxData            *TaxDataResponse            `json:"tax_data"`
	PrepaymentsData    *TaxDataResponse            `json:"prepayments_data"`
}

// NewInvoiceResponse maps an invoice with its lines to the enriched
// response. Persisted totals are reported as stored; the breakdowns are
// recomputed from the lines.
func NewInvoiceResponse(inv *entity.Invoice, company *entity.Company) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:                 inv.ID,
		Company:            NewCompanyResponse(company),
		InvoiceNumber:      inv.InvoiceNumber,
		BuyerName:          inv.BuyerName,
		BuyerNIP:           inv.BuyerNIP,
		BuyerPESEL:         inv.BuyerPESEL,
		BuyerAddress:       NewAddressResponse(inv.BuyerAddress),
		Currency:           inv.Currency,
		IsPaid:             inv.IsPaid,
		IsPrepayment:       inv.IsPrepayment,
		PreviousPrepayment: inv.PreviousPrepayment,
		DateFinished:       inv.DateFinished.Format(DateLayout),
		DateCreated:        inv.CreatedAt,
		Products:           make([]InvoiceProductResponse, 0, len(inv.Products)),
		NetPrice:           inv.NetPrice,
		TotalTax:           inv.TotalTax,
		GrossPrice:         inv.GrossPrice,
	}
	lines := make([]vat.InvoiceLine, 0, len(inv.Products))
	for _, p := range inv.Products {
		line := vat.InvoiceLine{
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			DiscountValue: p.DiscountValue,
			VATRate:       p.VATTax,
		}
		lines = append(lines, line)
		lt := vat.PriceInvoiceLine(line)
		resp.Products = append(resp.Products, InvoiceProductResponse{
			ID:                 p.ID,
			Name:               p.Name,
			Unit:               p.Unit,
			Quantity:           p.Quantity,
			UnitPrice:          p.UnitPrice,
			VatTax:             p.VATTax,
			DiscountValue:      p.DiscountValue,
			NetPrice:           lt.NetPrice,
			TaxValue:           lt.TaxValue,
			GrossPrice:         lt.GrossPrice,
			TotalDiscountValue: lt.TotalDiscount,
		})
	}
	resp.TaxData = newTaxDataResponse(vat.AggregateInvoice(lines))
	if inv.IsPrepayment {
		prepayLines := make([]vat.PrepaymentLine, 0, len(inv.Prepayments))
		for _, p := range inv.Prepayments {
			prepayLines = append(prepayLines, vat.PrepaymentLine{NetPrice: p.NetPrice, VATRate: p.VATTax})
		}
		totals := vat.AggregatePrepayments(prepayLines)
		resp.PrepaymentsData = newTaxDataResponse(totals)
		for _, p := range inv.Prepayments {
			lt := vat.PricePrepaymentLine(vat.PrepaymentLine{NetPrice: p.NetPrice, VATRate: p.VATTax})
			resp.Prepayments = append(resp.Prepayments, InvoicePrepaymentResponse{
				ID:         p.ID,
				NetPrice:   p.NetPrice,
				VatTax:     p.VATTax,
				TaxValue:   lt.TaxValue,
				GrossPrice: lt.GrossPrice,
			})
		}
	}
	return resp
}

// InvoiceListResponse is a paginated invoice list.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
