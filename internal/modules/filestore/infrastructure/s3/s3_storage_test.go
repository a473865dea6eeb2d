package s3_test

import (
	"context"
	"testing"

	"github.com/paperledger/invoice-backend/internal/modules/filestore/infrastructure/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage_RequiresBucketName(t *testing.T) {
	_, err := s3.NewStorage(context.Background(), s3.Config{Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket name")
}

func TestNewStorage_MinIOConfig(t *testing.T) {
	storage, err := s3.NewStorage(context.Background(), s3.Config{
		BucketName:     "invoices",
		Region:         "us-east-1",
		Endpoint:       "minio:9000",
		PublicEndpoint: "localhost:9000",
		AccessKey:      "minioadmin",
		SecretKey:      "minioadmin",
		UseSSL:         false,
	})
	require.NoError(t, err)
	assert.NotNil(t, storage)
}

func TestNewStorage_AWSConfig(t *testing.T) {
	storage, err := s3.NewStorage(context.Background(), s3.Config{
		BucketName: "invoices",
		Region:     "eu-west-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, storage)
}
