package vat_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Bracket parsing
// ──────────────────────────────────────────────────────────────────────────────

func TestParseBracket_Normalizes(t *testing.T) {
	for _, in := range []string{"a", "A", " a "} {
		b, err := vat.ParseBracket(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, vat.BracketA, b)
	}
}

func TestParseBracket_RejectsUnknownLetters(t *testing.T) {
	for _, in := range []string{"F", "x", "", "AB", "1"} {
		_, err := vat.ParseBracket(in)
		assert.Error(t, err, "input %q must be rejected", in)
	}
}

func TestBracketRates(t *testing.T) {
	assert.True(t, dec("0.23").Equal(vat.BracketA.Rate()))
	assert.True(t, dec("0.08").Equal(vat.BracketB.Rate()))
	assert.True(t, dec("0.05").Equal(vat.BracketC.Rate()))
	assert.True(t, decimal.Zero.Equal(vat.BracketD.Rate()))
	assert.True(t, vat.BracketE.Exempt())
	assert.False(t, vat.BracketD.Exempt())
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipt line pricing. The unit price is gross (VAT included), so tax is
// extracted as full - full/(1+rate), rounded to 2 places.
//
// Reference vector: full_price = 100, bracket A (23%)
//   tax = round(100 - 100/1.23, 2) = 18.70
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceReceiptLine_InclusiveExtraction(t *testing.T) {
	lt := vat.PriceReceiptLine(vat.ReceiptLine{
		Quantity:  dec("1"),
		UnitPrice: dec("100"),
		Bracket:   vat.BracketA,
	})
	assert.True(t, dec("100.00").Equal(lt.FullPrice), "full price, got %s", lt.FullPrice)
	assert.True(t, dec("18.70").Equal(lt.TaxValue), "extracted tax, got %s", lt.TaxValue)
}

func TestPriceReceiptLine_DiscountBeforeExtension(t *testing.T) {
	lt := vat.PriceReceiptLine(vat.ReceiptLine{
		Quantity:      dec("4"),
		UnitPrice:     dec("2.50"),
		DiscountValue: dec("0.50"),
		Bracket:       vat.BracketB,
	})
	assert.True(t, dec("10.00").Equal(lt.Price))
	assert.True(t, dec("2.00").Equal(lt.TotalDiscount))
	assert.True(t, dec("8.00").Equal(lt.FullPrice), "discount applies per unit before extension")
	// 8 - 8/1.08 = 0.5926 -> 0.59
	assert.True(t, dec("0.59").Equal(lt.TaxValue), "got %s", lt.TaxValue)
}

func TestPriceReceiptLine_ExemptExtractsNothing(t *testing.T) {
	lt := vat.PriceReceiptLine(vat.ReceiptLine{
		Quantity:  dec("3"),
		UnitPrice: dec("10"),
		Bracket:   vat.BracketE,
	})
	assert.True(t, dec("30.00").Equal(lt.FullPrice))
	assert.True(t, lt.TaxValue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Document aggregation. Vector from the reference scenario:
//   Egg:   qty 5,   unit 1,    bracket A
//   Apple: qty 100, unit 0.95, bracket B
// gross = 100.00, tax_values[B] = round(95 - 95/1.08, 2) = 7.04,
// total_tax = round((5 - 5/1.23) + 7.04, 2) = 7.97
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateReceipt_ReferenceScenario(t *testing.T) {
	totals := vat.AggregateReceipt([]vat.ReceiptLine{
		{Quantity: dec("5"), UnitPrice: dec("1"), Bracket: vat.BracketA},
		{Quantity: dec("100"), UnitPrice: dec("0.95"), Bracket: vat.BracketB},
	})

	assert.True(t, dec("100.00").Equal(totals.GrossPrice), "gross, got %s", totals.GrossPrice)
	require.Contains(t, totals.TaxValues, vat.BracketB)
	assert.True(t, dec("7.04").Equal(totals.TaxValues[vat.BracketB]), "got %s", totals.TaxValues[vat.BracketB])
	require.Contains(t, totals.TaxValues, vat.BracketA)
	assert.True(t, dec("0.93").Equal(totals.TaxValues[vat.BracketA]), "got %s", totals.TaxValues[vat.BracketA])
	assert.True(t, dec("7.97").Equal(totals.TotalTax), "got %s", totals.TotalTax)
}

func TestAggregateReceipt_ExemptInGrossNotInTax(t *testing.T) {
	totals := vat.AggregateReceipt([]vat.ReceiptLine{
		{Quantity: dec("1"), UnitPrice: dec("50"), Bracket: vat.BracketE},
		{Quantity: dec("1"), UnitPrice: dec("12.30"), Bracket: vat.BracketA},
	})
	assert.True(t, dec("62.30").Equal(totals.GrossPrice))
	assert.NotContains(t, totals.TaxValues, vat.BracketE, "E must never appear in tax_values")
	assert.True(t, dec("2.30").Equal(totals.TotalTax), "got %s", totals.TotalTax)
}

func TestAggregateReceipt_ZeroRateBracketPresentAsZero(t *testing.T) {
	totals := vat.AggregateReceipt([]vat.ReceiptLine{
		{Quantity: dec("2"), UnitPrice: dec("7"), Bracket: vat.BracketD},
	})
	require.Contains(t, totals.TaxValues, vat.BracketD)
	assert.True(t, totals.TaxValues[vat.BracketD].IsZero())
	assert.True(t, totals.TotalTax.IsZero())
}

func TestAggregateReceipt_BracketsWithoutLinesAbsent(t *testing.T) {
	totals := vat.AggregateReceipt([]vat.ReceiptLine{
		{Quantity: dec("1"), UnitPrice: dec("1"), Bracket: vat.BracketA},
	})
	assert.Len(t, totals.TaxValues, 1)
	assert.NotContains(t, totals.TaxValues, vat.BracketB)
}

func TestAggregateReceipt_SameBracketSums(t *testing.T) {
	totals := vat.AggregateReceipt([]vat.ReceiptLine{
		{Quantity: dec("1"), UnitPrice: dec("100"), Bracket: vat.BracketA},
		{Quantity: dec("1"), UnitPrice: dec("100"), Bracket: vat.BracketA},
	})
	assert.True(t, dec("37.40").Equal(totals.TaxValues[vat.BracketA]), "two 18.70 lines, got %s", totals.TaxValues[vat.BracketA])
}
