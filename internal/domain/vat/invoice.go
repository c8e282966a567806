package vat

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InvoiceLine is the pricing view of one invoice product. DiscountValue is
// reported per line but deliberately not part of the net price extension;
// receipts and invoices diverge here and the divergence is kept.
type InvoiceLine struct {
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal // net unit price
	DiscountValue decimal.Decimal
	VATRate       decimal.Decimal // percentage, e.g. 23
}

// InvoiceLineTotals carries the computed per-line figures.
type InvoiceLineTotals struct {
	NetPrice decimal.Decimal // quantity * unit price, rounded to 2 places
	TaxValue decimal.Decimal // net * rate/100, rounded to 2 places
	// GrossPrice is NetPrice + TaxValue with no further rounding step.
	GrossPrice decimal.Decimal
	// TotalDiscount is informational only: quantity * discount value.
	TotalDiscount decimal.Decimal
}

// PriceInvoiceLine computes a single invoice line with net-exclusive VAT.
func PriceInvoiceLine(l InvoiceLine) InvoiceLineTotals {
	net := round2(l.Quantity.Mul(l.UnitPrice))
	tax := round2(net.Mul(l.VATRate.Div(hundred)))
	return InvoiceLineTotals{
		NetPrice:      net,
		TaxValue:      tax,
		GrossPrice:    net.Add(tax),
		TotalDiscount: round2(l.Quantity.Mul(l.DiscountValue)),
	}
}

// RateTotals is the per-VAT-rate slice of an invoice breakdown.
type RateTotals struct {
	TotalNetPrice   decimal.Decimal
	TaxValue        decimal.Decimal
	TotalGrossPrice decimal.Decimal
}

// InvoiceTotals is the document-level aggregate of invoice products or
// prepayment lines.
type InvoiceTotals struct {
	TotalNetPrice decimal.Decimal
	TotalTaxValue decimal.Decimal
	TotalGross    decimal.Decimal
	// ByRate buckets the totals by the line's numeric VAT rate, keyed by its
	// canonical string form ("23", "7.5").
	ByRate map[string]RateTotals
}

// AggregateInvoice folds invoice product lines into document totals.
func AggregateInvoice(lines []InvoiceLine) InvoiceTotals {
	totals := newInvoiceTotals()
	for _, l := range lines {
		lt := PriceInvoiceLine(l)
		totals.add(l.VATRate, lt.NetPrice, lt.TaxValue, lt.GrossPrice)
	}
	return totals
}

// PrepaymentLine is one advance-payment line of a prepayment invoice.
type PrepaymentLine struct {
	NetPrice decimal.Decimal
	VATRate  decimal.Decimal // percentage
}

// PricePrepaymentLine computes one prepayment line:
// tax = round2(net*rate/100), gross = round2(net+tax).
func PricePrepaymentLine(l PrepaymentLine) InvoiceLineTotals {
	tax := round2(l.NetPrice.Mul(l.VATRate.Div(hundred)))
	return InvoiceLineTotals{
		NetPrice:   l.NetPrice,
		TaxValue:   tax,
		GrossPrice: round2(l.NetPrice.Add(tax)),
	}
}

// AggregatePrepayments folds prepayment lines into the same shape as the
// invoice product breakdown.
func AggregatePrepayments(lines []PrepaymentLine) InvoiceTotals {
	totals := newInvoiceTotals()
	for _, l := range lines {
		lt := PricePrepaymentLine(l)
		totals.add(l.VATRate, lt.NetPrice, lt.TaxValue, lt.GrossPrice)
	}
	return totals
}

func newInvoiceTotals() InvoiceTotals {
	return InvoiceTotals{
		TotalNetPrice: decimal.Zero,
		TotalTaxValue: decimal.Zero,
		TotalGross:    decimal.Zero,
		ByRate:        make(map[string]RateTotals),
	}
}

func (t *InvoiceTotals) add(rate, net, tax, gross decimal.Decimal) {
	t.TotalNetPrice = t.TotalNetPrice.Add(net)
	t.TotalTaxValue = t.TotalTaxValue.Add(tax)
	t.TotalGross = t.TotalGross.Add(gross)
	key := RateKey(rate)
	bucket := t.ByRate[key]
	bucket.TotalNetPrice = bucket.TotalNetPrice.Add(net)
	bucket.TaxValue = bucket.TaxValue.Add(tax)
	bucket.TotalGrossPrice = bucket.TotalGrossPrice.Add(gross)
	t.ByRate[key] = bucket
}

// RateKey canonicalizes a VAT rate for use as a breakdown key: trailing
// fraction zeros are dropped so 23, 23.0 and 23.00 bucket together.
func RateKey(rate decimal.Decimal) string {
	s := rate.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
