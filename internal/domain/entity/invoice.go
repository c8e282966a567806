package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a VAT invoice. InvoiceNumber follows FV/{year}/{month}/{seq}
// with the sequence restarting each calendar month per company; once assigned
// it is never changed. The buyer is identified by exactly one of NIP or PESEL.
// NetPrice/TotalTax/GrossPrice are accumulated at creation and read-only
// afterwards.
type Invoice struct {
	ID                 string
	CompanyID          string
	InvoiceNumber      string
	BuyerName          string
	BuyerNIP           string // 10 numeric digits, empty when PESEL is set
	BuyerPESEL         string // 11 numeric digits, empty when NIP is set
	BuyerAddress       Address
	Currency           string
	IsPaid             bool
	IsPrepayment       bool
	PreviousPrepayment string // invoice number of a prior prepayment invoice, display-only reference
	DateFinished       time.Time
	NetPrice           decimal.Decimal
	TotalTax           decimal.Decimal
	GrossPrice         decimal.Decimal
	CreatedAt          time.Time
	Products           []*InvoiceProduct
	Prepayments        []*InvoicePrepayment
}

// InvoiceProduct is one line of an invoice. DiscountValue is stored and
// reported per line but does not participate in the net price extension.
type InvoiceProduct struct {
	ID            string
	InvoiceID     string
	Position      int // 1-based submission order within the invoice
	Name          string
	Unit          string
	Quantity      decimal.Decimal // non-negative, up to 3 decimal places
	UnitPrice     decimal.Decimal // non-negative net unit price
	VATTax        decimal.Decimal // VAT rate as a percentage, e.g. 23
	DiscountValue decimal.Decimal
}

// InvoicePrepayment is an advance-payment line contributing to the totals of
// a prepayment invoice.
type InvoicePrepayment struct {
	ID        string
	InvoiceID string
	Position  int // 1-based submission order within the invoice
	NetPrice  decimal.Decimal
	VATTax    decimal.Decimal // VAT rate as a percentage
}
