package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/domain"
)

type PgInvoiceRepository struct {
	db *sqlx.DB
}

func NewPgInvoiceRepository(db *sqlx.DB) *PgInvoiceRepository {
	return &PgInvoiceRepository{db: db}
}

// invoiceRow is the flat Postgres shape of a domain.Invoice; line items are
// stored as a JSONB column
type invoiceRow struct {
	ID            uuid.UUID      `db:"id"`
	FileID        uuid.UUID      `db:"file_id"`
	FileName      string         `db:"file_name"`
	VendorName    string         `db:"vendor_name"`
	VendorAddress string         `db:"vendor_address"`
	VendorTaxID   string         `db:"vendor_tax_id"`
	Number        string         `db:"number"`
	Date          string         `db:"date"`
	Currency      string         `db:"currency"`
	Subtotal      *float64       `db:"subtotal"`
	TaxPercent    *float64       `db:"tax_percent"`
	Total         *float64       `db:"total"`
	PoNumber      string         `db:"po_number"`
	PoDate        string         `db:"po_date"`
	LineItems     types.JSONText `db:"line_items"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func toRow(inv *domain.Invoice) (*invoiceRow, error) {
	items, err := json.Marshal(inv.Details.LineItems)
	if err != nil {
		return nil, fmt.Errorf("marshal line items: %w", err)
	}
	return &invoiceRow{
		ID:            inv.ID,
		FileID:        inv.FileID,
		FileName:      inv.FileName,
		VendorName:    inv.Vendor.Name,
		VendorAddress: inv.Vendor.Address,
		VendorTaxID:   inv.Vendor.TaxID,
		Number:        inv.Details.Number,
		Date:          inv.Details.Date,
		Currency:      inv.Details.Currency,
		Subtotal:      inv.Details.Subtotal,
		TaxPercent:    inv.Details.TaxPercent,
		Total:         inv.Details.Total,
		PoNumber:      inv.Details.PoNumber,
		PoDate:        inv.Details.PoDate,
		LineItems:     types.JSONText(items),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}, nil
}

func (r *invoiceRow) toDomain() (*domain.Invoice, error) {
	var items []domain.LineItem
	if len(r.LineItems) > 0 {
		if err := json.Unmarshal(r.LineItems, &items); err != nil {
			return nil, fmt.Errorf("unmarshal line items: %w", err)
		}
	}
	return &domain.Invoice{
		ID:       r.ID,
		FileID:   r.FileID,
		FileName: r.FileName,
		Vendor: domain.Vendor{
			Name:    r.VendorName,
			Address: r.VendorAddress,
			TaxID:   r.VendorTaxID,
		},
		Details: domain.Details{
			Number:     r.Number,
			Date:       r.Date,
			Currency:   r.Currency,
			Subtotal:   r.Subtotal,
			TaxPercent: r.TaxPercent,
			Total:      r.Total,
			PoNumber:   r.PoNumber,
			PoDate:     r.PoDate,
			LineItems:  items,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (r *PgInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	row, err := toRow(inv)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (
			id, file_id, file_name,
			vendor_name, vendor_address, vendor_tax_id,
			number, date, currency, subtotal, tax_percent, total,
			po_number, po_date, line_items, created_at, updated_at
		) VALUES (
			:id, :file_id, :file_name,
			:vendor_name, :vendor_address, :vendor_tax_id,
			:number, :date, :currency, :subtotal, :tax_percent, :total,
			:po_number, :po_date, :line_items, :created_at, :updated_at
		)
	`
	_, err = r.db.NamedExecContext(ctx, query, row)
	return err
}

func (r *PgInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	query := `
		SELECT * FROM invoices
		WHERE id = $1
	`
	var row invoiceRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return row.toDomain()
}

func (r *PgInvoiceRepository) List(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT * FROM invoices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	var rows []invoiceRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, nil
}
