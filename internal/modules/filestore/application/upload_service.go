package application

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
)

// MaxUploadSize is the largest accepted payload (10 MiB)
const MaxUploadSize = 10 << 20

// PDFContentType is the only accepted media type
const PDFContentType = "application/pdf"

// UploadResult is returned to the client after a successful upload
type UploadResult struct {
	FileID   uuid.UUID `json:"fileId"`
	FileName string    `json:"fileName"`
}

// UploadService validates incoming documents, writes them to blob storage and
// records their metadata
type UploadService struct {
	storage domain.BlobStorage
	repo    domain.FileRepository
}

// NewUploadService creates a new upload service
func NewUploadService(storage domain.BlobStorage, repo domain.FileRepository) *UploadService {
	return &UploadService{
		storage: storage,
		repo:    repo,
	}
}

// Upload stores a PDF and persists its metadata. Validation happens before any
// I/O so a rejected request leaves no partial state behind. The metadata row is
// only written after the blob upload succeeded.
func (s *UploadService) Upload(ctx context.Context, data []byte, originalName, contentType string) (*UploadResult, error) {
	if err := validatePDF(data, originalName, contentType); err != nil {
		return nil, err
	}

	key := storageKey(originalName)

	url, err := s.storage.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStorageUnavailable, err)
	}

	asset := &domain.FileAsset{
		ID:         uuid.New(),
		FileName:   originalName,
		URL:        url,
		StorageKey: key,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		// The blob made it to storage but its metadata did not. Nothing can
		// reach the blob without a record, so delete it instead of leaving an
		// orphan behind.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Printf("[UploadService.Upload] orphaned blob cleanup failed for key %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrPersistenceFailure, err)
	}

	return &UploadResult{FileID: asset.ID, FileName: asset.FileName}, nil
}

func validatePDF(data []byte, originalName, contentType string) error {
	if len(data) == 0 {
		return domain.ErrInvalidFile
	}
	if contentType != PDFContentType {
		return domain.ErrInvalidFile
	}
	if strings.ToLower(filepath.Ext(originalName)) != ".pdf" {
		return domain.ErrInvalidFile
	}
	if len(data) > MaxUploadSize {
		return domain.ErrFileTooLarge
	}
	return nil
}

// storageKey derives a collision-resistant blob key from the original name,
// the current time and a random suffix, so repeated uploads of the same file
// never overwrite each other
func storageKey(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Int64N(1_000_000_000))
	return fmt.Sprintf("%s-%s%s", base, suffix, ext)
}
