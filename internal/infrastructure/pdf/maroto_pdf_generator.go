// Package pdf renders the printable representation of a VAT invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: seller name + NIP   │  invoice number + dates      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SELLER: registered address                                 │
//	│  BUYER: name + NIP/PESEL + address                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Unit price | VAT% | Net | Tax | Gross  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TAX SUMMARY: per rate, net / VAT / gross                   │
//	│  TOTALS: net / VAT / gross (+ prepayment lines if any)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Ansup17174/randomproject/internal/application/billing"
	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/vat"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("VAT Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sellerRow(company))
	m.AddRows(buyerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(invoice) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range taxSummaryRows(invoice) {
		m.AddRows(r)
	}
	m.AddRows(totalsRow(invoice))

	if invoice.IsPrepayment {
		m.AddRows(line.NewRow(2))
		for _, r := range prepaymentRows(invoice) {
			m.AddRows(r)
		}
	}
	if invoice.PreviousPrepayment != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Settles prepayment invoice "+invoice.PreviousPrepayment, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: seller name + NIP on the left, invoice number and dates on the
// right.
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIP: "+company.NIP, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VAT INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(
				fmt.Sprintf("Issued: %s   Completed: %s",
					invoice.CreatedAt.Format("02.01.2006"),
					invoice.DateFinished.Format("02.01.2006"),
				),
				props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray},
			),
		),
	)
}

func sellerRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SELLER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(formatAddress(company.Address), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

func buyerRow(invoice *entity.Invoice) core.Row {
	identity := "NIP: " + invoice.BuyerNIP
	if invoice.BuyerPESEL != "" {
		identity = "PESEL: " + invoice.BuyerPESEL
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BUYER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.BuyerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(identity+"   |   "+formatAddress(invoice.BuyerAddress), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 3, align.Left),
		h("Unit price", 2, align.Right),
		h("VAT%", 1, align.Center),
		h("Net", 2, align.Right),
		h("Tax", 1, align.Right),
		h("Gross", 2, align.Right),
	)
}

// tableLineRows: one row per invoice line, figures recomputed from the
// stored quantities and rates.
func tableLineRows(invoice *entity.Invoice) []core.Row {
	result := make([]core.Row, 0, len(invoice.Products))
	for _, p := range invoice.Products {
		lt := vat.PriceInvoiceLine(vat.InvoiceLine{
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			DiscountValue: p.DiscountValue,
			VATRate:       p.VATTax,
		})
		name := p.Name
		if p.Unit != "" {
			name = fmt.Sprintf("%s (%s)", p.Name, p.Unit)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				p.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				p.VATTax.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				lt.NetPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				lt.TaxValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				lt.GrossPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// rateSummary is one formatted row of the per-rate tax breakdown.
type rateSummary struct {
	Rate  string
	Net   string
	Tax   string
	Gross string
}

// taxSummary recomputes the per-rate breakdown from the stored lines, rates
// ascending.
func taxSummary(invoice *entity.Invoice) []rateSummary {
	lines := make([]vat.InvoiceLine, 0, len(invoice.Products))
	for _, p := range invoice.Products {
		lines = append(lines, vat.InvoiceLine{
			Quantity:      p.Quantity,
			UnitPrice:     p.UnitPrice,
			DiscountValue: p.DiscountValue,
			VATRate:       p.VATTax,
		})
	}
	totals := vat.AggregateInvoice(lines)

	keys := make([]string, 0, len(totals.ByRate))
	for k := range totals.ByRate {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := decimal.NewFromString(keys[i])
		b, _ := decimal.NewFromString(keys[j])
		return a.LessThan(b)
	})

	result := make([]rateSummary, 0, len(keys))
	for _, k := range keys {
		bucket := totals.ByRate[k]
		result = append(result, rateSummary{
			Rate:  k + "%",
			Net:   bucket.TotalNetPrice.StringFixed(2),
			Tax:   bucket.TaxValue.StringFixed(2),
			Gross: bucket.TotalGrossPrice.StringFixed(2),
		})
	}
	return result
}

func taxSummaryRows(invoice *entity.Invoice) []core.Row {
	cell := func(s string, size int, style fontstyle.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: style, Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}
	rows := []core.Row{
		row.New(6).Add(
			col.New(12).Add(text.New("TAX SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			})),
		),
		row.New(5).Add(
			col.New(3),
			cell("Rate", 3, fontstyle.Bold),
			cell("Net", 2, fontstyle.Bold),
			cell("VAT", 2, fontstyle.Bold),
			cell("Gross", 2, fontstyle.Bold),
		),
	}
	for _, s := range taxSummary(invoice) {
		rows = append(rows, row.New(5).Add(
			col.New(3),
			cell(s.Rate, 3, fontstyle.Normal),
			cell(s.Net, 2, fontstyle.Normal),
			cell(s.Tax, 2, fontstyle.Normal),
			cell(s.Gross, 2, fontstyle.Normal),
		))
	}
	return rows
}

func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL DUE:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(
		invoice.GrossPrice.StringFixed(2)+" "+invoice.Currency,
		props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		},
	)

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Net total:"),
			label("VAT total:"),
			grandLabel,
		),
		col.New(4).Add(
			value(invoice.NetPrice.StringFixed(2)+" "+invoice.Currency),
			value(invoice.TotalTax.StringFixed(2)+" "+invoice.Currency),
			grandValue,
		),
	)
}

// prepaymentRows: one row per advance payment with its extracted figures.
func prepaymentRows(invoice *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ADVANCE PAYMENTS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, p := range invoice.Prepayments {
		lt := vat.PricePrepaymentLine(vat.PrepaymentLine{NetPrice: p.NetPrice, VATRate: p.VATTax})
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(6).Add(text.New(
				fmt.Sprintf("net %s  +  VAT (%s%%) %s  =  %s %s",
					p.NetPrice.StringFixed(2), p.VATTax.String(),
					lt.TaxValue.StringFixed(2), lt.GrossPrice.StringFixed(2),
					invoice.Currency,
				),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return rows
}

func formatAddress(a entity.Address) string {
	return fmt.Sprintf("%s %s, %s %s, %s", a.Street, a.BuildingNumber, a.PostCode, a.City, a.Country)
}
