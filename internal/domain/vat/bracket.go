// Package vat implements the price and tax arithmetic for receipts and
// invoices: bracket-coded gross-inclusive VAT extraction for receipt lines
// and explicit-percentage net VAT for invoice lines and prepayments. All
// functions are pure folds over line slices; callers aggregate once per
// document and persist or render the result.
package vat

import (
	"fmt"
	"strings"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/shopspring/decimal"
)

// Bracket is a letter-coded receipt VAT category.
type Bracket string

// Receipt VAT brackets. A-D carry a gross-inclusive percentage, E is exempt.
const (
	BracketA Bracket = "A" // 23%
	BracketB Bracket = "B" // 8%
	BracketC Bracket = "C" // 5%
	BracketD Bracket = "D" // 0%
	BracketE Bracket = "E" // exempt, no tax extracted
)

var bracketRates = map[Bracket]decimal.Decimal{
	BracketA: decimal.New(23, -2),
	BracketB: decimal.New(8, -2),
	BracketC: decimal.New(5, -2),
	BracketD: decimal.Zero,
}

// ParseBracket normalizes a bracket letter (case-insensitive) and rejects
// anything outside A-E with domain.ErrInvalidInput.
func ParseBracket(s string) (Bracket, error) {
	b := Bracket(strings.ToUpper(strings.TrimSpace(s)))
	switch b {
	case BracketA, BracketB, BracketC, BracketD, BracketE:
		return b, nil
	}
	return "", fmt.Errorf("%w: vat type %q must be one of A, B, C, D or E", domain.ErrInvalidInput, s)
}

// Exempt reports whether the bracket extracts no tax at all.
func (b Bracket) Exempt() bool { return b == BracketE }

// Rate returns the gross-inclusive VAT fraction for the bracket, e.g. 0.23
// for A. The zero value is returned for E; check Exempt first, an exempt
// line is excluded from tax rather than taxed at zero.
func (b Bracket) Rate() decimal.Decimal {
	return bracketRates[b]
}
