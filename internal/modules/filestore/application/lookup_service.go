package application

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
)

// LookupService retrieves file metadata for client consumption
type LookupService struct {
	repo       domain.FileRepository
	storage    domain.BlobStorage
	presignTTL time.Duration
}

// NewLookupService creates a new lookup service. A non-zero presignTTL means
// the bucket is private: blob URLs are presigned per lookup instead of serving
// the stored URL.
func NewLookupService(repo domain.FileRepository, storage domain.BlobStorage, presignTTL time.Duration) *LookupService {
	return &LookupService{
		repo:       repo,
		storage:    storage,
		presignTTL: presignTTL,
	}
}

// GetByID returns the metadata record for the given id. The id is validated
// before the repository is contacted; malformed ids never hit the database.
func (s *LookupService) GetByID(ctx context.Context, id string) (*domain.FileMetadata, error) {
	fileID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidFileID
	}

	asset, err := s.repo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	return &domain.FileMetadata{
		FileID:    asset.ID.String(),
		Name:      asset.FileName,
		BlobURL:   s.blobURL(ctx, asset),
		CreatedAt: asset.CreatedAt,
	}, nil
}

// Presigns reports whether lookups hand out time-limited URLs. Presigned
// metadata must not be cached beyond the signature lifetime.
func (s *LookupService) Presigns() bool {
	return s.presignTTL > 0
}

// blobURL presigns the blob when configured for it, falling back to the stored
// URL if signing fails so a lookup never breaks over a signing hiccup
func (s *LookupService) blobURL(ctx context.Context, asset *domain.FileAsset) string {
	if s.presignTTL <= 0 || asset.StorageKey == "" {
		return asset.URL
	}

	signed, err := s.storage.PresignedURL(ctx, asset.StorageKey, s.presignTTL)
	if err != nil {
		log.Printf("[LookupService.GetByID] presign failed for key %s: %v", asset.StorageKey, err)
		return asset.URL
	}
	return signed
}
