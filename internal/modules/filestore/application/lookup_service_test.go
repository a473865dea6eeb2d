package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/application"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService_RejectsMalformedIDWithoutQuerying(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) {
			t.Fatal("repository should not be contacted for a malformed id")
			return nil, nil
		},
	}

	svc := application.NewLookupService(repo, &mockStorage{}, 0)
	for _, id := range []string{"not-a-valid-id", "", "1234", "d6f1b9c0-zzzz"} {
		_, err := svc.GetByID(context.Background(), id)
		require.ErrorIs(t, err, domain.ErrInvalidFileID, "id %q", id)
	}
}

func TestLookupService_NotFound(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) {
			return nil, domain.ErrFileNotFound
		},
	}

	svc := application.NewLookupService(repo, &mockStorage{}, 0)
	_, err := svc.GetByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestLookupService_ShapesRecord(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		getByIDFn: func(_ context.Context, got uuid.UUID) (*domain.FileAsset, error) {
			assert.Equal(t, id, got)
			return &domain.FileAsset{
				ID:        id,
				FileName:  "invoice.pdf",
				URL:       "https://blobs.example.com/invoice-123.pdf",
				CreatedAt: created,
			}, nil
		},
	}

	svc := application.NewLookupService(repo, &mockStorage{}, 0)
	meta, err := svc.GetByID(context.Background(), id.String())
	require.NoError(t, err)

	assert.Equal(t, id.String(), meta.FileID)
	assert.Equal(t, "invoice.pdf", meta.Name)
	assert.Equal(t, "https://blobs.example.com/invoice-123.pdf", meta.BlobURL)
	assert.Equal(t, created, meta.CreatedAt)
}

func TestLookupService_RepeatedLookupsAreIdentical(t *testing.T) {
	id := uuid.New()
	asset := &domain.FileAsset{
		ID:        id,
		FileName:  "invoice.pdf",
		URL:       "https://blobs.example.com/invoice-123.pdf",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) { return asset, nil },
	}

	svc := application.NewLookupService(repo, &mockStorage{}, 0)
	first, err := svc.GetByID(context.Background(), id.String())
	require.NoError(t, err)
	second, err := svc.GetByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLookupService_PresignsBlobURL(t *testing.T) {
	id := uuid.New()
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) {
			return &domain.FileAsset{
				ID:         id,
				FileName:   "invoice.pdf",
				URL:        "https://bucket.s3.amazonaws.com/invoice-1.pdf",
				StorageKey: "invoice-1.pdf",
			}, nil
		},
	}
	storage := &mockStorage{
		presignFn: func(_ context.Context, key string, ttl time.Duration) (string, error) {
			assert.Equal(t, "invoice-1.pdf", key)
			assert.Equal(t, 15*time.Minute, ttl)
			return "https://bucket.s3.amazonaws.com/invoice-1.pdf?X-Amz-Signature=abc", nil
		},
	}

	svc := application.NewLookupService(repo, storage, 15*time.Minute)
	assert.True(t, svc.Presigns())

	meta, err := svc.GetByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/invoice-1.pdf?X-Amz-Signature=abc", meta.BlobURL)
}

func TestLookupService_PresignFailureFallsBackToStoredURL(t *testing.T) {
	id := uuid.New()
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) {
			return &domain.FileAsset{
				ID:         id,
				FileName:   "invoice.pdf",
				URL:        "https://bucket.s3.amazonaws.com/invoice-1.pdf",
				StorageKey: "invoice-1.pdf",
			}, nil
		},
	}
	storage := &mockStorage{
		presignFn: func(context.Context, string, time.Duration) (string, error) {
			return "", errors.New("signing key unavailable")
		},
	}

	svc := application.NewLookupService(repo, storage, 15*time.Minute)
	meta, err := svc.GetByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/invoice-1.pdf", meta.BlobURL)
}

func TestLookupService_NoPresignWithoutTTL(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) {
			return &domain.FileAsset{
				ID:         uuid.New(),
				URL:        "https://blobs.example.com/invoice-1.pdf",
				StorageKey: "invoice-1.pdf",
			}, nil
		},
	}
	storage := &mockStorage{
		presignFn: func(context.Context, string, time.Duration) (string, error) {
			t.Fatal("presign must not run when no TTL is configured")
			return "", nil
		},
	}

	svc := application.NewLookupService(repo, storage, 0)
	assert.False(t, svc.Presigns())

	meta, err := svc.GetByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.example.com/invoice-1.pdf", meta.BlobURL)
}

func TestLookupService_PropagatesRepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &mockRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*domain.FileAsset, error) { return nil, dbErr },
	}

	svc := application.NewLookupService(repo, &mockStorage{}, 0)
	_, err := svc.GetByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, dbErr)
}
