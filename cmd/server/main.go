package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/paperledger/invoice-backend/internal/gateway"
	"github.com/paperledger/invoice-backend/internal/gateway/middleware"
	"github.com/paperledger/invoice-backend/internal/modules/filestore"
	"github.com/paperledger/invoice-backend/internal/modules/invoice"
	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/config"
	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/database"
	"github.com/paperledger/invoice-backend/pkg/migration"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	if err := migration.AutoMigrate(cfg.Database.URL(), "./migrations", logger); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	filestoreModule, err := filestore.NewModule(ctx, cfg.FileStorage, db, redisClient)
	if err != nil {
		log.Fatalf("Failed to initialize filestore module: %v", err)
	}

	invoiceModule := invoice.NewModule(db, cfg.Extraction, filestoreModule.Lookups(), logger)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		FileHandler:    filestoreModule.HTTPHandler(),
		InvoiceHandler: invoiceModule.HTTPHandler(),
	})

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
