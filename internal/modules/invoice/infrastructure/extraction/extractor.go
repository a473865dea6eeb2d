package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/paperledger/invoice-backend/internal/modules/invoice/domain"
	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/config"
)

// HTTPExtractor calls a structured-output extraction endpoint and validates
// the response against the invoice schema before handing it back
type HTTPExtractor struct {
	cfg    config.ExtractionConfig
	client *http.Client
	logger *slog.Logger
}

// NewHTTPExtractor creates an extractor bound to the configured endpoint
func NewHTTPExtractor(cfg config.ExtractionConfig, logger *slog.Logger) *HTTPExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPExtractor{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// extractPayload is the request body understood by the extraction endpoint
type extractPayload struct {
	Model       string         `json:"model"`
	DocumentURL string         `json:"document_url"`
	Filename    string         `json:"filename,omitempty"`
	Schema      map[string]any `json:"schema"`
}

// ExtractFields sends the document to the extraction endpoint and returns the
// parsed invoice fields plus the raw response for auditing
func (e *HTTPExtractor) ExtractFields(ctx context.Context, req domain.ExtractRequest) (*domain.Extraction, []byte, error) {
	if e.cfg.Endpoint == "" {
		return nil, nil, domain.ErrExtractorDisabled
	}

	schema := BuildInvoiceJSONSchema()
	payload := extractPayload{
		Model:       e.cfg.Model,
		DocumentURL: req.DocumentURL,
		Filename:    req.FilenameHint,
		Schema:      schema,
	}

	headers := map[string]string{}
	if e.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + e.cfg.APIKey
	}

	raw, _, err := SendJSON(ctx, e.client, e.cfg.Endpoint, payload, headers, e.logger)
	if err != nil {
		return nil, raw, fmt.Errorf("%w: %s", domain.ErrExtractionFailed, err)
	}

	// The endpoint is schema-constrained, but never trust it blindly
	if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
		return nil, raw, fmt.Errorf("%w: %s", domain.ErrExtractionFailed, err)
	}

	var out domain.Extraction
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, raw, fmt.Errorf("%w: %s", domain.ErrExtractionFailed, err)
	}
	return &out, raw, nil
}
