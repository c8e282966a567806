package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a printed sales receipt. PrintNumber restarts at 1 for each
// company every calendar day and is never reused; ReceiptNumber mirrors it.
// CreatedAt is server-assigned and immutable after creation.
type Receipt struct {
	ID             string
	CompanyID      string
	Header         string
	PrintNumber    int
	ReceiptNumber  int
	SalesPoint     *Address // optional point-of-sale address, owned by the receipt
	CheckoutNumber string
	BuyerNIP       string
	Currency       string
	CreatedAt      time.Time
	Products       []*ReceiptProduct
}

// ReceiptProduct is one line of a receipt. Lines are owned exclusively by
// their receipt and removed with it.
type ReceiptProduct struct {
	ID            string
	ReceiptID     string
	Position      int // 1-based submission order within the receipt
	Name          string
	Quantity      decimal.Decimal // non-negative, up to 3 decimal places
	UnitPrice     decimal.Decimal // non-negative, gross (VAT included), 2 decimal places
	VATType       string          // bracket letter A-E, stored uppercase
	DiscountValue decimal.Decimal // non-negative, subtracted from unit price before extension
}
