package invoice

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/application"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/domain"
	"github.com/paperledger/invoice-backend/internal/modules/invoice/infrastructure/extraction"
	persistence "github.com/paperledger/invoice-backend/internal/modules/invoice/infrastructure/persistence/postgres"
	invoiceHttp "github.com/paperledger/invoice-backend/internal/modules/invoice/interfaces/http"
	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/config"
)

// Module represents the Invoice module
type Module struct {
	repository *persistence.PgInvoiceRepository
	extractor  domain.FieldExtractor
	service    *application.InvoiceService
	handler    *invoiceHttp.InvoiceHandler
}

// NewModule creates and initializes the Invoice module
func NewModule(db *sqlx.DB, cfg config.ExtractionConfig, files application.FileFinder, logger *slog.Logger) *Module {
	repository := persistence.NewPgInvoiceRepository(db)
	extractor := extraction.NewHTTPExtractor(cfg, logger)
	service := application.NewInvoiceService(repository, files, extractor)
	handler := invoiceHttp.NewInvoiceHandler(service)

	return &Module{
		repository: repository,
		extractor:  extractor,
		service:    service,
		handler:    handler,
	}
}

// Service returns the invoice service
func (m *Module) Service() *application.InvoiceService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *invoiceHttp.InvoiceHandler {
	return m.handler
}
