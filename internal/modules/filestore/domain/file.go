package domain

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// FileAsset represents one uploaded document. A record only exists once the
// corresponding blob upload has succeeded, so URL always points at real bytes.
// Records are never mutated after creation.
type FileAsset struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FileName   string    `json:"file_name" db:"file_name"`
	URL        string    `json:"url" db:"url"`
	StorageKey string    `json:"storage_key" db:"storage_key"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// FileMetadata is the client-facing shape of a FileAsset
type FileMetadata struct {
	FileID    string    `json:"fileId"`
	Name      string    `json:"name"`
	BlobURL   string    `json:"blobUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlobStorage defines the interface for blob storage operations.
// This can be implemented by S3, MinIO, local filesystem, etc.
type BlobStorage interface {
	// Upload writes the blob under the given key and returns the public URL
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Delete removes a blob by its key
	Delete(ctx context.Context, key string) error

	// PresignedURL generates a temporary URL for viewing a blob
	PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// FileRepository defines the contract for file metadata access
type FileRepository interface {
	Create(ctx context.Context, asset *FileAsset) error
	GetByID(ctx context.Context, id uuid.UUID) (*FileAsset, error)
}
