// Package numbering holds the document numbering rules: daily-resetting
// receipt print numbers and monthly-resetting FV invoice numbers. The
// functions are pure; callers feed them the most recently created document
// read inside the same transaction that inserts the new one.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ansup17174/randomproject/internal/domain"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
)

// InvoicePrefix starts every invoice number: FV/{year}/{month}/{sequence}.
const InvoicePrefix = "FV"

// NextPrintNumber returns the print number for a receipt created at now.
// Numbers restart at 1 each calendar day per company; same-day receipts
// continue from the latest one. last is the company's most recently created
// receipt, nil when none exists.
func NextPrintNumber(last *entity.Receipt, now time.Time) int {
	if last == nil {
		return 1
	}
	if sameDay(last.CreatedAt.In(now.Location()), now) {
		return last.PrintNumber + 1
	}
	return 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatInvoiceNumber renders FV/{year}/{month}/{sequence} with an unpadded
// month, e.g. FV/2024/7/12.
func FormatInvoiceNumber(year int, month time.Month, sequence int) string {
	return fmt.Sprintf("%s/%d/%d/%d", InvoicePrefix, year, int(month), sequence)
}

// ParseSequence extracts the trailing sequence from a stored invoice number.
// Invoice numbers are write-once, so a number that does not parse means the
// stored state is corrupt: the error wraps domain.ErrInconsistentNumbering
// and must be treated as internal, not user-facing.
func ParseSequence(invoiceNumber string) (int, error) {
	parts := strings.Split(invoiceNumber, "/")
	seq, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed invoice number %q", domain.ErrInconsistentNumbering, invoiceNumber)
	}
	return seq, nil
}

// NextInvoiceNumber returns the number for an invoice created at now. The
// sequence continues from the company's most recent invoice when that one
// was created in the same calendar month, and restarts at 1 otherwise.
// last is nil when the company has no invoices yet.
func NextInvoiceNumber(last *entity.Invoice, now time.Time) (string, error) {
	sequence := 1
	if last != nil {
		created := last.CreatedAt.In(now.Location())
		if created.Year() == now.Year() && created.Month() == now.Month() {
			lastSeq, err := ParseSequence(last.InvoiceNumber)
			if err != nil {
				return "", err
			}
			sequence = lastSeq + 1
		}
	}
	return FormatInvoiceNumber(now.Year(), now.Month(), sequence), nil
}
