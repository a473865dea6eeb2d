package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Storage implements the BlobStorage interface on the local filesystem.
// Intended for development; production uses the S3 implementation.
type Storage struct {
	basePath string
	baseURL  string
}

// NewStorage creates a new local filesystem storage
func NewStorage(basePath, baseURL string) (*Storage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Storage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Upload writes a blob to disk and returns its public URL
func (l *Storage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	fullPath := filepath.Join(l.basePath, key)

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", l.baseURL, key), nil
}

// Delete removes a blob from disk
func (l *Storage) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(l.basePath, key))
}

// PresignedURL just returns the public URL; local files need no presigning
func (l *Storage) PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s", l.baseURL, key), nil
}
