package postgres

import (
	"context"
	"fmt"

	"github.com/Ansup17174/randomproject/internal/domain/entity"
	"github.com/Ansup17174/randomproject/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implements the ReceiptRepository port over PostgreSQL (usable
// with pool or tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository builds the adapter. Pass a pool or a tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `
	r.id, r.company_id, r.header, r.print_number, r.receipt_number,
	r.checkout_number, r.buyer_nip, r.currency, r.created_at,
	a.id, a.street, a.building_number, a.post_code, a.city, a.country`

// Create persists the receipt header and, when present, its sales-point
// address row.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	ctx := context.Background()
	var salesPointID *string
	if sp := receipt.SalesPoint; sp != nil {
		salesPointID = &sp.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO addresses (id, street, building_number, post_code, city, country)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			sp.ID, sp.Street, sp.BuildingNumber, sp.PostCode, sp.City, sp.Country,
		)
		if err != nil {
			return fmt.Errorf("insert sales point: %w", err)
		}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO receipts (id, company_id, header, print_number, receipt_number, sales_point_id, checkout_number, buyer_nip, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		receipt.ID, receipt.CompanyID, receipt.Header, receipt.PrintNumber, receipt.ReceiptNumber,
		salesPointID, receipt.CheckoutNumber, nullIfEmpty(receipt.BuyerNIP), receipt.Currency, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// CreateProduct persists one receipt line.
func (r *ReceiptRepo) CreateProduct(product *entity.ReceiptProduct) error {
	query := `
		INSERT INTO receipt_products (id, receipt_id, position, name, quantity, unit_price, vat_type, discount_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ReceiptID, product.Position, product.Name,
		product.Quantity, product.UnitPrice, product.VATType, product.DiscountValue,
	)
	if err != nil {
		return fmt.Errorf("insert receipt product: %w", err)
	}
	return nil
}

// GetByID fetches a receipt with its sales point and products.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM receipts r LEFT JOIN addresses a ON a.id = r.sales_point_id
		WHERE r.id = $1`, receiptColumns)
	receipt, err := r.scanReceipt(r.q.QueryRow(context.Background(), query, id))
	if err != nil || receipt == nil {
		return receipt, err
	}
	byReceipt, err := r.loadProducts([]string{receipt.ID})
	if err != nil {
		return nil, err
	}
	receipt.Products = byReceipt[receipt.ID]
	return receipt, nil
}

// GetLatestByCompany returns the company's most recently created receipt
// without its lines; only the header matters for print number assignment.
func (r *ReceiptRepo) GetLatestByCompany(companyID string) (*entity.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM receipts r LEFT JOIN addresses a ON a.id = r.sales_point_id
		WHERE r.company_id = $1
		ORDER BY r.created_at DESC LIMIT 1`, receiptColumns)
	return r.scanReceipt(r.q.QueryRow(context.Background(), query, companyID))
}

// ListByOwner returns receipts of the owner's companies, newest first,
// products included.
func (r *ReceiptRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM receipts r
		LEFT JOIN addresses a ON a.id = r.sales_point_id
		JOIN companies c ON c.id = r.company_id
		WHERE c.owner_id = $1
		ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`, receiptColumns)
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Receipt
	var ids []string
	for rows.Next() {
		receipt, err := r.scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, receipt)
		ids = append(ids, receipt.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	byReceipt, err := r.loadProducts(ids)
	if err != nil {
		return nil, err
	}
	for _, receipt := range list {
		receipt.Products = byReceipt[receipt.ID]
	}
	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ReceiptRepo) scanReceipt(row rowScanner) (*entity.Receipt, error) {
	var rec entity.Receipt
	var buyerNIP *string
	var spID, spStreet, spBuilding, spPostCode, spCity, spCountry *string
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.Header, &rec.PrintNumber, &rec.ReceiptNumber,
		&rec.CheckoutNumber, &buyerNIP, &rec.Currency, &rec.CreatedAt,
		&spID, &spStreet, &spBuilding, &spPostCode, &spCity, &spCountry,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	rec.BuyerNIP = orEmpty(buyerNIP)
	if spID != nil {
		rec.SalesPoint = &entity.Address{
			ID:             *spID,
			Street:         orEmpty(spStreet),
			BuildingNumber: orEmpty(spBuilding),
			PostCode:       orEmpty(spPostCode),
			City:           orEmpty(spCity),
			Country:        orEmpty(spCountry),
		}
	}
	return &rec, nil
}

func (r *ReceiptRepo) loadProducts(receiptIDs []string) (map[string][]*entity.ReceiptProduct, error) {
	query := `
		SELECT id, receipt_id, position, name, quantity, unit_price, vat_type, discount_value
		FROM receipt_products WHERE receipt_id = ANY($1)
		ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, receiptIDs)
	if err != nil {
		return nil, fmt.Errorf("load receipt products: %w", err)
	}
	defer rows.Close()

	byReceipt := make(map[string][]*entity.ReceiptProduct)
	for rows.Next() {
		var p entity.ReceiptProduct
		if err := rows.Scan(&p.ID, &p.ReceiptID, &p.Position, &p.Name, &p.Quantity, &p.UnitPrice, &p.VATType, &p.DiscountValue); err != nil {
			return nil, fmt.Errorf("scan receipt product: %w", err)
		}
		byReceipt[p.ReceiptID] = append(byReceipt[p.ReceiptID], &p)
	}
	return byReceipt, rows.Err()
}
