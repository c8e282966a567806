package vat

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// round2 is the document rounding step: two decimal places, half away from
// zero. Every monetary figure that leaves this package went through it.
func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// ReceiptLine is the pricing view of one receipt product.
type ReceiptLine struct {
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal // gross, VAT included
	DiscountValue decimal.Decimal // per-unit, subtracted before extension
	Bracket       Bracket
}

// ReceiptLineTotals carries the computed per-line figures.
type ReceiptLineTotals struct {
	Price         decimal.Decimal // quantity * unit price
	TotalDiscount decimal.Decimal // quantity * discount value
	FullPrice     decimal.Decimal // quantity * (unit price - discount), the line's gross
	TaxValue      decimal.Decimal // VAT extracted from FullPrice, zero for bracket E
}

// PriceReceiptLine computes a single line. The full price is treated as
// VAT-inclusive gross, so the extracted tax is
// full - full/(1+rate), rounded to 2 places.
func PriceReceiptLine(l ReceiptLine) ReceiptLineTotals {
	t := ReceiptLineTotals{
		Price:         round2(l.Quantity.Mul(l.UnitPrice)),
		TotalDiscount: round2(l.Quantity.Mul(l.DiscountValue)),
		FullPrice:     round2(l.Quantity.Mul(l.UnitPrice.Sub(l.DiscountValue))),
	}
	if !l.Bracket.Exempt() {
		divisor := one.Add(l.Bracket.Rate())
		t.TaxValue = round2(t.FullPrice.Sub(t.FullPrice.Div(divisor)))
	}
	return t
}

// ReceiptTotals is the document-level aggregate of a receipt.
type ReceiptTotals struct {
	// GrossPrice sums FullPrice over every line, exempt lines included.
	GrossPrice decimal.Decimal
	// TaxValues maps bracket letter to the summed tax of its lines. Brackets
	// with no lines are absent, and E never appears.
	TaxValues map[Bracket]decimal.Decimal
	// TotalTax sums TaxValues, rounded to 2 places.
	TotalTax decimal.Decimal
}

// AggregateReceipt folds the lines into document totals.
func AggregateReceipt(lines []ReceiptLine) ReceiptTotals {
	totals := ReceiptTotals{
		GrossPrice: decimal.Zero,
		TaxValues:  make(map[Bracket]decimal.Decimal),
		TotalTax:   decimal.Zero,
	}
	for _, l := range lines {
		lt := PriceReceiptLine(l)
		totals.GrossPrice = totals.GrossPrice.Add(lt.FullPrice)
		if l.Bracket.Exempt() {
			continue
		}
		totals.TaxValues[l.Bracket] = totals.TaxValues[l.Bracket].Add(lt.TaxValue)
	}
	for _, tax := range totals.TaxValues {
		totals.TotalTax = totals.TotalTax.Add(tax)
	}
	totals.TotalTax = round2(totals.TotalTax)
	return totals
}
