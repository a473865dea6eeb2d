package filestore_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/paperledger/invoice-backend/internal/modules/filestore"
	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModule_LocalStorage(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})

	module, err := filestore.NewModule(context.Background(), config.FileStorageConfig{
		UseS3:        false,
		LocalPath:    t.TempDir(),
		LocalBaseURL: "http://localhost:4000/uploads",
	}, db, redisClient)
	require.NoError(t, err)

	assert.NotNil(t, module.HTTPHandler())
	assert.NotNil(t, module.Lookups())
}

func TestNewModule_S3RequiresBucket(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	_, err = filestore.NewModule(context.Background(), config.FileStorageConfig{
		UseS3:    true,
		S3Region: "us-east-1",
	}, db, nil)
	require.Error(t, err)
}
