// Package archive mirrors receipt uploads to S3-compatible storage. The
// SQLite blob remains the source of truth; the archive copy exists so
// receipts survive database loss.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3Client is an interface for testability.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// Archiver writes receipt copies to a bucket. A zero-configured Archiver
// is disabled and every call becomes a no-op.
type Archiver struct {
	cfg    S3Config
	client s3Client
	logger *slog.Logger
}

// New creates an Archiver. The archive is enabled only when bucket and
// credentials are all configured.
func New(cfg S3Config, logger *slog.Logger) *Archiver {
	a := &Archiver{cfg: cfg, logger: logger}
	if cfg.Bucket != "" && cfg.AccessKey != "" && cfg.SecretKey != "" {
		a.client = newS3Client(cfg)
	}
	return a
}

func newS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Enabled reports whether archive storage is configured.
func (a *Archiver) Enabled() bool {
	return a.client != nil
}

// Put uploads receipt bytes under a generated key and returns the key.
// When the archive is disabled it returns "" without error.
func (a *Archiver) Put(ctx context.Context, userID int64, fileName, contentType string, data []byte) (string, error) {
	if a.client == nil {
		return "", nil
	}

	key := fmt.Sprintf("receipts/%d/%s-%s", userID, uuid.NewString(), fileName)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("archive receipt: %w", err)
	}

	a.logger.Info("receipt archived", "key", key, "bytes", len(data))
	return key, nil
}

// Delete removes an archived receipt. Unknown or empty keys are no-ops.
func (a *Archiver) Delete(ctx context.Context, key string) error {
	if a.client == nil || key == "" {
		return nil
	}

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete archived receipt: %w", err)
	}
	return nil
}
