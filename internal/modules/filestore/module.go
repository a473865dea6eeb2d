package filestore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/application"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/infrastructure/local"
	persistence "github.com/paperledger/invoice-backend/internal/modules/filestore/infrastructure/persistence/postgres"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/infrastructure/s3"
	filestoreHttp "github.com/paperledger/invoice-backend/internal/modules/filestore/interfaces/http"
	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// Module represents the FileStore module
type Module struct {
	storage domain.BlobStorage
	uploads *application.UploadService
	lookups *application.LookupService
	handler *filestoreHttp.FileHandler
}

// NewModule creates and initializes the FileStore module
func NewModule(ctx context.Context, cfg config.FileStorageConfig, db *sqlx.DB, redisClient *redis.Client) (*Module, error) {
	var storage domain.BlobStorage
	var err error

	if cfg.UseS3 {
		storage, err = s3.NewStorage(ctx, s3.Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
	} else {
		storage, err = local.NewStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
	}

	repo := persistence.NewPgFileRepository(db)
	uploads := application.NewUploadService(storage, repo)
	lookups := application.NewLookupService(repo, storage, cfg.PresignTTL)
	handler := filestoreHttp.NewFileHandler(uploads, lookups, redisClient)

	return &Module{
		storage: storage,
		uploads: uploads,
		lookups: lookups,
		handler: handler,
	}, nil
}

// Lookups returns the lookup service for use by other modules
func (m *Module) Lookups() *application.LookupService {
	return m.lookups
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *filestoreHttp.FileHandler {
	return m.handler
}
