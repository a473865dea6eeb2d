package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	filestoreHttp "github.com/paperledger/invoice-backend/internal/modules/filestore/interfaces/http"
	invoiceHttp "github.com/paperledger/invoice-backend/internal/modules/invoice/interfaces/http"
)

func TestSetupRoutes(t *testing.T) {
	config := RouterConfig{
		FileHandler:    &filestoreHttp.FileHandler{},
		InvoiceHandler: &invoiceHttp.InvoiceHandler{},
	}

	mux := SetupRoutes(config)

	if mux == nil {
		t.Fatal("Expected mux to be created, got nil")
	}
}

func TestSetupRoutes_HealthCheck(t *testing.T) {
	config := RouterConfig{
		FileHandler:    &filestoreHttp.FileHandler{},
		InvoiceHandler: &invoiceHttp.InvoiceHandler{},
	}

	mux := SetupRoutes(config)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", rec.Body.String())
	}
}

func TestSetupRoutes_Metrics(t *testing.T) {
	config := RouterConfig{
		FileHandler:    &filestoreHttp.FileHandler{},
		InvoiceHandler: &invoiceHttp.InvoiceHandler{},
	}

	mux := SetupRoutes(config)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestSetupRoutes_UnknownPath(t *testing.T) {
	config := RouterConfig{
		FileHandler:    &filestoreHttp.FileHandler{},
		InvoiceHandler: &invoiceHttp.InvoiceHandler{},
	}

	mux := SetupRoutes(config)

	req := httptest.NewRequest("GET", "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
