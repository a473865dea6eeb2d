package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment
	os.Clearenv()

	// Set required vars
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "user")
	os.Setenv("DB_PASSWORD", "pass")
	os.Setenv("DB_NAME", "test")

	cfg := Load()

	// Verify defaults
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 5*time.Second, cfg.Redis.PingTimeout)
	assert.True(t, cfg.FileStorage.UseS3)
	assert.Zero(t, cfg.FileStorage.PresignTTL)
	assert.Equal(t, "./uploads", cfg.FileStorage.LocalPath)
	assert.Equal(t, "", cfg.Extraction.Endpoint)
	assert.Equal(t, 45*time.Second, cfg.Extraction.Timeout)
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()

	// Set custom values
	os.Setenv("PORT", "9000")
	os.Setenv("ALLOWED_ORIGINS", "https://example.com")
	os.Setenv("DB_HOST", "db-server")
	os.Setenv("DB_PORT", "15432")
	os.Setenv("DB_USER", "admin")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_NAME", "production")
	os.Setenv("DB_SSLMODE", "require")
	os.Setenv("REDIS_HOST", "redis-server")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_PING_TIMEOUT", "2s")
	os.Setenv("USE_S3", "false")
	os.Setenv("S3_BUCKET", "invoices")
	os.Setenv("S3_PRESIGN_TTL", "30m")
	os.Setenv("EXTRACTION_ENDPOINT", "https://llm.example.com/v1/extract")
	os.Setenv("EXTRACTION_MODEL", "gpt-4o")

	cfg := Load()

	// Verify custom values
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "https://example.com", cfg.Server.AllowedOrigins)
	assert.Equal(t, "db-server", cfg.Database.Host)
	assert.Equal(t, "15432", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "production", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "redis-server", cfg.Redis.Host)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 2*time.Second, cfg.Redis.PingTimeout)
	assert.False(t, cfg.FileStorage.UseS3)
	assert.Equal(t, "invoices", cfg.FileStorage.S3BucketName)
	assert.Equal(t, 30*time.Minute, cfg.FileStorage.PresignTTL)
	assert.Equal(t, "https://llm.example.com/v1/extract", cfg.Extraction.Endpoint)
	assert.Equal(t, "gpt-4o", cfg.Extraction.Model)
}

func TestLoad_PublicEndpointFallsBackToEndpoint(t *testing.T) {
	os.Clearenv()
	os.Setenv("S3_ENDPOINT", "http://minio:9000")

	cfg := Load()
	assert.Equal(t, "http://minio:9000", cfg.FileStorage.S3PublicEndpoint)

	os.Setenv("S3_PUBLIC_ENDPOINT", "https://cdn.example.com")
	cfg = Load()
	assert.Equal(t, "https://cdn.example.com", cfg.FileStorage.S3PublicEndpoint)
}

func TestLoad_ExtractionTimeoutParsing(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"seconds", "30s", 30 * time.Second},
		{"minutes", "2m", 2 * time.Minute},
		{"mixed", "1m30s", 90 * time.Second},
		{"invalid_uses_default", "invalid", 45 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("EXTRACTION_TIMEOUT", tt.value)

			cfg := Load()
			assert.Equal(t, tt.expected, cfg.Extraction.Timeout)
		})
	}
}
