package postgres

import (
	"context"
	"fmt"

	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements the InvoiceRepository port over PostgreSQL (usable
// with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	i.id, i.company_id, i.invoice_number, i.buyer_name, i.buyer_nip, i.buyer_pesel,
	i.currency, i.is_paid, i.is_prepayment, i.previous_prepayment, i.date_finished,
	i.net_price, i.total_tax, i.gross_price, i.created_at,
	a.id, a.street, a.building_number, a.post_code, a.city, a.country`

// Create persists the invoice header, its buyer address row and the totals
// accumulated at creation.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		WITH addr AS (
			INSERT INTO addresses (id, street, building_number, post_code, city, country)
			VALUES ($15, $16, $17, $18, $19, $20)
		)
		INSERT INTO invoices (id, company_id, invoice_number, buyer_name, buyer_nip, buyer_pesel,
			buyer_address_id, currency, is_paid, is_prepayment, previous_prepayment, date_finished,
			net_price, total_tax, gross_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $15, $7, $8, $9, $10, $11, $12, $13, $14, $21)`
	a := invoice.BuyerAddress
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.InvoiceNumber, invoice.BuyerName,
		nullIfEmpty(invoice.BuyerNIP), nullIfEmpty(invoice.BuyerPESEL),
		invoice.Currency, invoice.IsPaid, invoice.IsPrepayment,
		nullIfEmpty(invoice.PreviousPrepayment), invoice.DateFinished,
		invoice.NetPrice, invoice.TotalTax, invoice.GrossPrice,
		a.ID, a.Street, a.BuildingNumber, a.PostCode, a.City, a.Country,
		invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateProduct persists one invoice line.
func (r *InvoiceRepo) CreateProduct(product *entity.InvoiceProduct) error {
	query := `
		INSERT INTO invoice_products (id, invoice_id, position, name, unit, quantity, unit_price, vat_tax, discount_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.InvoiceID, product.Position, product.Name, product.Unit,
		product.Quantity, product.UnitPrice, product.VATTax, product.DiscountValue,
	)
	if err != nil {
		return fmt.Errorf("insert invoice product: %w", err)
	}
	return nil
}

// CreatePrepayment persists one prepayment line.
func (r *InvoiceRepo) CreatePrepayment(prepayment *entity.InvoicePrepayment) error {
	query := `
		INSERT INTO invoice_prepayments (id, invoice_id, position, net_price, vat_tax)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		prepayment.ID, prepayment.InvoiceID, prepayment.Position, prepayment.NetPrice, prepayment.VATTax,
	)
	if err != nil {
		return fmt.Errorf("insert invoice prepayment: %w", err)
	}
	return nil
}

// GetByID fetches an invoice with its buyer address and all lines.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.getOne("i.id = $1", id)
}

// GetByNumber resolves an invoice number within one company.
func (r *InvoiceRepo) GetByNumber(companyID, invoiceNumber string) (*entity.Invoice, error) {
	return r.getOne("i.company_id = $1 AND i.invoice_number = $2", companyID, invoiceNumber)
}

func (r *InvoiceRepo) getOne(where string, args ...any) (*entity.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices i JOIN addresses a ON a.id = i.buyer_address_id
		WHERE %s`, invoiceColumns, where)
	invoice, err := r.scanInvoice(r.q.QueryRow(context.Background(), query, args...))
	if err != nil || invoice == nil {
		return invoice, err
	}
	if err := r.loadLines([]*entity.Invoice{invoice}); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetLatestByCompany returns the company's most recently created invoice
// without its lines; only the stored number matters for number assignment.
func (r *InvoiceRepo) GetLatestByCompany(companyID string) (*entity.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices i JOIN addresses a ON a.id = i.buyer_address_id
		WHERE i.company_id = $1
		ORDER BY i.created_at DESC LIMIT 1`, invoiceColumns)
	return r.scanInvoice(r.q.QueryRow(context.Background(), query, companyID))
}

// ListByOwner returns invoices of the owner's companies, newest first, lines
// included.
func (r *InvoiceRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices i
		JOIN addresses a ON a.id = i.buyer_address_id
		JOIN companies c ON c.id = i.company_id
		WHERE c.owner_id = $1
		ORDER BY i.created_at DESC LIMIT $2 OFFSET $3`, invoiceColumns)
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		invoice, err := r.scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.loadLines(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *InvoiceRepo) scanInvoice(row rowScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	var buyerNIP, buyerPESEL, previousPrepayment *string
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.InvoiceNumber, &inv.BuyerName, &buyerNIP, &buyerPESEL,
		&inv.Currency, &inv.IsPaid, &inv.IsPrepayment, &previousPrepayment, &inv.DateFinished,
		&inv.NetPrice, &inv.TotalTax, &inv.GrossPrice, &inv.CreatedAt,
		&inv.BuyerAddress.ID, &inv.BuyerAddress.Street, &inv.BuyerAddress.BuildingNumber,
		&inv.BuyerAddress.PostCode, &inv.BuyerAddress.City, &inv.BuyerAddress.Country,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	inv.BuyerNIP = orEmpty(buyerNIP)
	inv.BuyerPESEL = orEmpty(buyerPESEL)
	inv.PreviousPrepayment = orEmpty(previousPrepayment)
	return &inv, nil
}

// loadLines fills Products and Prepayments for the given invoices with one
// query per table.
func (r *InvoiceRepo) loadLines(invoices []*entity.Invoice) error {
	ctx := context.Background()
	byID := make(map[string]*entity.Invoice, len(invoices))
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, position, name, unit, quantity, unit_price, vat_tax, discount_value
		FROM invoice_products WHERE invoice_id = ANY($1)
		ORDER BY position`, ids)
	if err != nil {
		return fmt.Errorf("load invoice products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.InvoiceProduct
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Position, &p.Name, &p.Unit, &p.Quantity, &p.UnitPrice, &p.VATTax, &p.DiscountValue); err != nil {
			return fmt.Errorf("scan invoice product: %w", err)
		}
		byID[p.InvoiceID].Products = append(byID[p.InvoiceID].Products, &p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	prows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, position, net_price, vat_tax
		FROM invoice_prepayments WHERE invoice_id = ANY($1)
		ORDER BY position`, ids)
	if err != nil {
		return fmt.Errorf("load invoice prepayments: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p entity.InvoicePrepayment
		if err := prows.Scan(&p.ID, &p.InvoiceID, &p.Position, &p.NetPrice, &p.VATTax); err != nil {
			return fmt.Errorf("scan invoice prepayment: %w", err)
		}
		byID[p.InvoiceID].Prepayments = append(byID[p.InvoiceID].Prepayments, &p)
	}
	return prows.Err()
}
