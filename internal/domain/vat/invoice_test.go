package vat_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

// ──────────────────────────────────────────────────────────────────────────────
// Invoice line pricing. Unit prices are net; tax is added on top.
//
// Reference vector: qty 10, unit 4.99, rate 23
//   net   = 49.90
//   tax   = round(49.90 * 0.23, 2) = 11.48
//   gross = 61.38
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceInvoiceLine_ReferenceVector(t *testing.T) {
	lt := vat.PriceInvoiceLine(vat.InvoiceLine{
		Quantity:  dec("10"),
		UnitPrice: dec("4.99"),
		VATRate:   dec("23"),
	})
	assert.True(t, dec("49.90").Equal(lt.NetPrice), "net, got %s", lt.NetPrice)
	assert.True(t, dec("11.48").Equal(lt.TaxValue), "tax, got %s", lt.TaxValue)
	assert.True(t, dec("61.38").Equal(lt.GrossPrice), "gross, got %s", lt.GrossPrice)
}

func TestPriceInvoiceLine_DiscountReportedButNotSubtracted(t *testing.T) {
	lt := vat.PriceInvoiceLine(vat.InvoiceLine{
		Quantity:      dec("2"),
		UnitPrice:     dec("10"),
		DiscountValue: dec("1"),
		VATRate:       dec("8"),
	})
	// Net extension ignores the discount; only the informational total moves.
	assert.True(t, dec("20.00").Equal(lt.NetPrice))
	assert.True(t, dec("2.00").Equal(lt.TotalDiscount))
	assert.True(t, dec("1.60").Equal(lt.TaxValue))
}

func TestPriceInvoiceLine_FractionalQuantity(t *testing.T) {
	lt := vat.PriceInvoiceLine(vat.InvoiceLine{
		Quantity:  dec("1.555"),
		UnitPrice: dec("3.33"),
		VATRate:   dec("23"),
	})
	// 1.555 * 3.33 = 5.17815 -> 5.18; 5.18 * 0.23 = 1.1914 -> 1.19
	assert.True(t, dec("5.18").Equal(lt.NetPrice), "got %s", lt.NetPrice)
	assert.True(t, dec("1.19").Equal(lt.TaxValue), "got %s", lt.TaxValue)
}

func TestAggregateInvoice_TotalsAndRateBuckets(t *testing.T) {
	totals := vat.AggregateInvoice([]vat.InvoiceLine{
		{Quantity: dec("10"), UnitPrice: dec("4.99"), VATRate: dec("23")},
		{Quantity: dec("2"), UnitPrice: dec("10.99"), VATRate: dec("23")},
		{Quantity: dec("1"), UnitPrice: dec("100"), VATRate: dec("8")},
	})

	// 49.90 + 21.98 + 100.00
	assert.True(t, dec("171.88").Equal(totals.TotalNetPrice), "net, got %s", totals.TotalNetPrice)
	// 11.48 + 5.06 + 8.00
	assert.True(t, dec("24.54").Equal(totals.TotalTaxValue), "tax, got %s", totals.TotalTaxValue)
	assert.True(t, dec("196.42").Equal(totals.TotalGross), "gross, got %s", totals.TotalGross)

	require.Contains(t, totals.ByRate, "23")
	require.Contains(t, totals.ByRate, "8")
	at23 := totals.ByRate["23"]
	assert.True(t, dec("71.88").Equal(at23.TotalNetPrice))
	assert.True(t, dec("16.54").Equal(at23.TaxValue))
	assert.True(t, dec("88.42").Equal(at23.TotalGrossPrice))
}

func TestAggregateInvoice_RateKeyNormalization(t *testing.T) {
	totals := vat.AggregateInvoice([]vat.InvoiceLine{
		{Quantity: dec("1"), UnitPrice: dec("10"), VATRate: dec("23")},
		{Quantity: dec("1"), UnitPrice: dec("10"), VATRate: dec("23.00")},
	})
	require.Len(t, totals.ByRate, 1, "23 and 23.00 must share a bucket")
	assert.True(t, dec("20.00").Equal(totals.ByRate["23"].TotalNetPrice))
}

func TestRateKey(t *testing.T) {
	assert.Equal(t, "23", vat.RateKey(dec("23.00")))
	assert.Equal(t, "7.5", vat.RateKey(dec("7.50")))
	assert.Equal(t, "0", vat.RateKey(decimal.Zero))
}

// ──────────────────────────────────────────────────────────────────────────────
// Prepayment aggregation: same shape as the product breakdown, sourced from
// net amounts directly.
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregatePrepayments(t *testing.T) {
	totals := vat.AggregatePrepayments([]vat.PrepaymentLine{
		{NetPrice: dec("200"), VATRate: dec("23")},
		{NetPrice: dec("50"), VATRate: dec("5")},
	})
	assert.True(t, dec("250.00").Equal(totals.TotalNetPrice), "got %s", totals.TotalNetPrice)
	assert.True(t, dec("48.50").Equal(totals.TotalTaxValue), "46 + 2.50, got %s", totals.TotalTaxValue)
	assert.True(t, dec("298.50").Equal(totals.TotalGross), "got %s", totals.TotalGross)
	require.Contains(t, totals.ByRate, "23")
	assert.True(t, dec("246.00").Equal(totals.ByRate["23"].TotalGrossPrice))
}
