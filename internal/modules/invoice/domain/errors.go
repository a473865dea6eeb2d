package domain

import "errors"

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvalidInvoiceID  = errors.New("invalid invoice id")
	ErrInvalidInvoice    = errors.New("invoice is missing required fields")
	ErrExtractionFailed  = errors.New("field extraction failed")
	ErrExtractorDisabled = errors.New("no extraction endpoint configured")
)
