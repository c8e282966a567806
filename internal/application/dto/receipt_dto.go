package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

// ReceiptProductRequest is one line of a receipt creation body.
type ReceiptProductRequest struct {
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	VatType       string          `json:"vat_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// Validate checks line fields; the VAT bracket letter is validated at
// submission time, not at aggregation time.
func (r ReceiptProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if r.Quantity.IsNegative() || r.UnitPrice.IsNegative() || r.DiscountValue.IsNegative() {
		return fmt.Errorf("%w: quantity, unit_price and discount_value must be non-negative", domain.ErrInvalidInput)
	}
	_, err := vat.ParseBracket(r.VatType)
	return err
}

// CreateReceiptRequest is the body of POST /api/receipts.
type CreateReceiptRequest struct {
	CompanyName    string                  `json:"company_name"`
	Header         string                  `json:"header,omitempty"`
	Currency       string                  `json:"currency"`
	CheckoutNumber string                  `json:"checkout_number,omitempty"`
	BuyerNIP       string                  `json:"buyer_nip,omitempty"`
	SalesPoint     *AddressRequest         `json:"sales_point,omitempty"`
	Products       []ReceiptProductRequest `json:"products"`
}

// Validate checks the header fields and every line.
func (r CreateReceiptRequest) Validate() error {
	if r.CompanyName == "" {
		return fmt.Errorf("%w: company_name is required", domain.ErrInvalidInput)
	}
	if r.Currency == "" {
		return fmt.Errorf("%w: currency is required", domain.ErrInvalidInput)
	}
	if len(r.Products) == 0 {
		return fmt.Errorf("%w: at least one product is required", domain.ErrInvalidInput)
	}
	if r.BuyerNIP != "" {
		if err := ValidateNIP(r.BuyerNIP); err != nil {
			return err
		}
	}
	if r.SalesPoint != nil {
		if err := r.SalesPoint.Validate(); err != nil {
			return err
		}
	}
	for _, p := range r.Products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ReceiptProductResponse is one receipt line enriched with computed figures.
type ReceiptProductResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	VatType            string          `json:"vat_type"`
	DiscountValue      decimal.Decimal `json:"discount_value"`
	Price              decimal.Decimal `json:"price"`
	TotalDiscountValue decimal.Decimal `json:"total_discount_value"`
	FullPrice          decimal.Decimal `json:"full_price"`
}

// ReceiptResponse is a receipt enriched with the document aggregates.
type ReceiptResponse struct {
	ID             string                     `json:"id"`
	Company        *CompanyResponse           `json:"company,omitempty"`
	Header         string                     `json:"header,omitempty"`
	PrintNumber    int                        `json:"print_number"`
	ReceiptNumber  int                        `json:"receipt_number"`
	SalesPoint     *AddressResponse           `json:"sales_point,omitempty"`
	CheckoutNumber string                     `json:"checkout_number,omitempty"`
	BuyerNIP       string                     `json:"buyer_nip,omitempty"`
	Currency       string                     `json:"currency"`
	DateCreated    time.Time                  `json:"date_created"`
	Products       []ReceiptProductResponse   `json:"products"`
	GrossPrice     decimal.Decimal            `json:"gross_price"`
	TaxValues      map[string]decimal.Decimal `json:"tax_values"`
	TotalTax       decimal.Decimal            `json:"total_tax"`
}

// NewReceiptResponse maps a receipt with its lines to the enriched response,
// recomputing the per-line figures and document aggregates.
func NewReceiptResponse(r *entity.Receipt, company *entity.Company) *ReceiptResponse {
	resp := &ReceiptResponse{
		ID:             r.ID,
		Company:        NewCompanyResponse(company),
		Header:         r.Header,
		PrintNumber:    r.PrintNumber,
		ReceiptNumber:  r.ReceiptNumber,
		CheckoutNumber: r.CheckoutNumber,
		BuyerNIP:       r.BuyerNIP,
		Currency:       r.Currency,
		DateCreated:    r.CreatedAt,
		Products:       make([]ReceiptProductResponse, 0, len(r.Products)),
	}
	if r.SalesPoint != nil {
		sp := NewAddressResponse(*r.SalesPoint)
		resp.SalesPoint = &sp
	}
	lines := make([]vat.ReceiptLine, 0, len(r.Products))
	for _, p := range r.Products {
		line := vat.ReceiptLine{
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			DiscountValue: p.DiscountValue,
			Bracket:       vat.Bracket(p.VATType),
		}
		lines = append(lines, line)
		lt := vat.PriceReceiptLine(line)
		resp.Products = append(resp.Products, ReceiptProductResponse{
			ID:                 p.ID,
			Name:               p.Name,
			Quantity:           p.Quantity,
			UnitPrice:          p.UnitPrice,
			VatType:            p.VATType,
			DiscountValue:      p.DiscountValue,
			Price:              lt.Price,
			TotalDiscountValue: lt.TotalDiscount,
			FullPrice:          lt.FullPrice,
		})
	}
	totals := vat.AggregateReceipt(lines)
	resp.GrossPrice = totals.GrossPrice
	resp.TotalTax = totals.TotalTax
	resp.TaxValues = make(map[string]decimal.Decimal, len(totals.TaxValues))
	for bracket, tax := range totals.TaxValues {
		resp.TaxValues[string(bracket)] = tax
	}
	return resp
}

// ReceiptListResponse is a paginated receipt list.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
