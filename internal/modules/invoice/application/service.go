package application

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	filestoredomain "github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/domain"
)

// FileFinder resolves uploaded documents; implemented by the filestore
// module's lookup service
type FileFinder interface {
	GetByID(ctx context.Context, id string) (*filestoredomain.FileMetadata, error)
}

// InvoiceService orchestrates field extraction and invoice persistence
type InvoiceService struct {
	repo      domain.InvoiceRepository
	files     FileFinder
	extractor domain.FieldExtractor
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo domain.InvoiceRepository, files FileFinder, extractor domain.FieldExtractor) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		files:     files,
		extractor: extractor,
	}
}

// Extract resolves the uploaded document and runs field extraction on it.
// Nothing is persisted; the result goes back to the client for review.
func (s *InvoiceService) Extract(ctx context.Context, fileID string) (*domain.Extraction, error) {
	meta, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	result, raw, err := s.extractor.ExtractFields(ctx, domain.ExtractRequest{
		DocumentURL:  meta.BlobURL,
		FilenameHint: meta.Name,
	})
	if err != nil {
		log.Printf("[InvoiceService.Extract] extraction failed for file %s: %v", fileID, err)
		return nil, err
	}

	log.Printf("[InvoiceService.Extract] extracted %d line items from %s (%d raw bytes)",
		len(result.Details.LineItems), meta.Name, len(raw))
	return result, nil
}

// Save validates a reviewed invoice and persists it
func (s *InvoiceService) Save(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if inv.FileID == uuid.Nil || inv.Vendor.Name == "" || inv.Details.Number == "" || inv.Details.Date == "" {
		return nil, domain.ErrInvalidInvoice
	}

	now := time.Now().UTC()
	inv.ID = uuid.New()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Details.LineItems == nil {
		inv.Details.LineItems = []domain.LineItem{}
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetByID returns one invoice
func (s *InvoiceService) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidInvoiceID
	}
	return s.repo.GetByID(ctx, invoiceID)
}

// List returns invoices newest first
func (s *InvoiceService) List(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	return s.repo.List(ctx, limit, offset)
}
