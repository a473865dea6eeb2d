package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds configuration for S3/MinIO storage
type Config struct {
	BucketName     string
	Region         string
	Endpoint       string // Internal endpoint (e.g., minio:9000)
	PublicEndpoint string // Public endpoint (e.g., localhost:9000)
	AccessKey      string
	SecretKey      string
	UseSSL         bool
}

// Storage implements the BlobStorage interface using AWS S3 or MinIO
type Storage struct {
	client        *s3.Client
	presignClient *s3.Client // separate client for presigning with the public endpoint
	config        Config
}

// NewStorage creates a new S3-backed blob storage
func NewStorage(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO / LocalStack configuration
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint, cfg.UseSSL))
			o.UsePathStyle = true // Required for MinIO
		}
	})

	// Presigned URLs must be reachable from outside the cluster, so they are
	// generated against the public endpoint when one is configured
	presignClient := client
	if cfg.Endpoint != "" && cfg.PublicEndpoint != "" {
		presignClient = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(withScheme(cfg.PublicEndpoint, cfg.UseSSL))
			o.UsePathStyle = true
		})
	}

	return &Storage{
		client:        client,
		presignClient: presignClient,
		config:        cfg,
	}, nil
}

// Upload writes a blob to S3 and returns its public URL
func (s *Storage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	if s.config.PublicEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", withScheme(s.config.PublicEndpoint, s.config.UseSSL), s.config.BucketName, key), nil
	}
	if s.config.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", withScheme(s.config.Endpoint, s.config.UseSSL), s.config.BucketName, key), nil
	}

	// S3: https://bucket.s3.region.amazonaws.com/file.ext
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, key), nil
}

// Delete removes a blob from S3
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	return err
}

// PresignedURL generates a temporary URL for viewing a blob
func (s *Storage) PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	presigner := s3.NewPresignClient(s.presignClient)

	request, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiration
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return request.URL, nil
}

// withScheme prefixes an endpoint with http:// or https:// when missing
func withScheme(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}
