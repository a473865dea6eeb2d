package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LineItem is one billed row on an invoice
type LineItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}

// Vendor identifies the issuing party
type Vendor struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// Details carries the invoice-level fields. Dates stay strings in whatever
// format the document used; they are display data, not computed on.
type Details struct {
	Number     string     `json:"number"`
	Date       string     `json:"date"`
	Currency   string     `json:"currency,omitempty"`
	Subtotal   *float64   `json:"subtotal,omitempty"`
	TaxPercent *float64   `json:"taxPercent,omitempty"`
	Total      *float64   `json:"total,omitempty"`
	PoNumber   string     `json:"poNumber,omitempty"`
	PoDate     string     `json:"poDate,omitempty"`
	LineItems  []LineItem `json:"lineItems"`
}

// Invoice is a reviewed, persisted extraction result tied to a FileAsset
type Invoice struct {
	ID        uuid.UUID `json:"id"`
	FileID    uuid.UUID `json:"fileId"`
	FileName  string    `json:"fileName"`
	Vendor    Vendor    `json:"vendor"`
	Details   Details   `json:"invoice"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Extraction is the unsaved field set produced by the extractor, shaped the
// way the review UI consumes it
type Extraction struct {
	Vendor  Vendor  `json:"vendor"`
	Details Details `json:"invoice"`
}

// ExtractRequest describes the document handed to the extractor
type ExtractRequest struct {
	DocumentURL  string
	FilenameHint string
}

// FieldExtractor is the interface the invoice pipeline depends on. The raw
// response body is returned alongside the parsed fields for audit logging.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (*Extraction, []byte, error)
}

// InvoiceRepository defines the contract for invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, limit, offset int) ([]Invoice, error)
}
