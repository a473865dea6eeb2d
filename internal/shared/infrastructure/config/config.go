package config

import (
	"os"
	"time"

	"github.com/paperledger/invoice-backend/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	FileStorage FileStorageConfig
	Extraction  ExtractionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// FileStorageConfig holds blob storage configuration. PresignTTL > 0 marks the
// bucket private: lookups hand out presigned URLs valid for that long instead
// of the stored public URL.
type FileStorageConfig struct {
	UseS3            bool
	S3Region         string
	S3Endpoint       string
	S3PublicEndpoint string
	S3AccessKey      string
	S3SecretKey      string
	S3BucketName     string
	S3UseSSL         bool
	PresignTTL       time.Duration
	LocalPath        string
	LocalBaseURL     string
}

// ExtractionConfig holds the invoice field-extraction endpoint configuration
type ExtractionConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "4000"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "invoices"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getEnv("REDIS_PORT", "6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          0,
			PingTimeout: parseDuration(getEnv("REDIS_PING_TIMEOUT", "5s"), 5*time.Second),
		},
		FileStorage: FileStorageConfig{
			UseS3:            getEnv("USE_S3", "true") == "true",
			S3Region:         getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:       getEnv("S3_ENDPOINT", ""),
			S3PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
			S3BucketName:     getEnv("S3_BUCKET", ""),
			S3UseSSL:         getEnv("S3_USE_SSL", "true") == "true",
			PresignTTL:       parseDuration(getEnv("S3_PRESIGN_TTL", "0s"), 0),
			LocalPath:        getEnv("LOCAL_STORAGE_PATH", "./uploads"),
			LocalBaseURL:     getEnv("LOCAL_STORAGE_URL", "http://localhost:4000/uploads"),
		},
		Extraction: ExtractionConfig{
			Endpoint: getEnv("EXTRACTION_ENDPOINT", ""),
			APIKey:   getEnv("EXTRACTION_API_KEY", ""),
			Model:    getEnv("EXTRACTION_MODEL", "gpt-4o-mini"),
			Timeout:  parseDuration(getEnv("EXTRACTION_TIMEOUT", "45s"), 45*time.Second),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
