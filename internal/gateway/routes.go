package gateway

import (
	"net/http"

	filestoreHttp "github.com/paperledger/invoice-backend/internal/modules/filestore/interfaces/http"
	invoiceHttp "github.com/paperledger/invoice-backend/internal/modules/invoice/interfaces/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the handlers needed for routing
type RouterConfig struct {
	FileHandler    *filestoreHttp.FileHandler
	InvoiceHandler *invoiceHttp.InvoiceHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// File Routes
	mux.HandleFunc("POST /upload", config.FileHandler.Upload)
	mux.HandleFunc("GET /files/{id}", config.FileHandler.Get)

	// Invoice Routes
	mux.HandleFunc("POST /extract", config.InvoiceHandler.Extract)
	mux.HandleFunc("POST /invoices", config.InvoiceHandler.Create)
	mux.HandleFunc("GET /invoices", config.InvoiceHandler.List)
	mux.HandleFunc("GET /invoices/{id}", config.InvoiceHandler.Get)

	return mux
}
