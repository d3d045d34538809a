package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/pkg/logger"
	"go.uber.org/zap"
)

const (
	ProviderMinio = "minio"
	ProviderS3    = "s3"
	ProviderGCS   = "gcs"
)

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// URL returns the public address of key.
	URL(key string) string
	Bucket() string
}

// Uploader stores profile pictures. The second return value is false when
// nothing was stored, either because storage is not configured or because
// the upload failed.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, bool)
}

// Storage wraps an ObjectStorage backend with a stable API.
type Storage struct {
	backend       ObjectStorage
	publicBaseURL string
	timeout       time.Duration
}

// NewStorage constructs a Storage wrapper for the provided backend.
func NewStorage(backend ObjectStorage, publicBaseURL string, timeout time.Duration) *Storage {
	return &Storage{
		backend:       backend,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		timeout:       timeout,
	}
}

// New builds the uploader selected by cfg.Provider. An empty provider yields
// an Unconfigured uploader.
func New(ctx context.Context, cfg config.StorageConfig) (Uploader, error) {
	var (
		backend ObjectStorage
		err     error
	)

	switch cfg.Provider {
	case "":
		return Unconfigured{}, nil
	case ProviderMinio:
		backend, err = NewMinioClient(cfg)
	case ProviderS3:
		backend, err = NewS3Client(ctx, cfg)
	case ProviderGCS:
		backend, err = NewGCSClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s storage: %w", cfg.Provider, err)
	}

	return NewStorage(backend, cfg.PublicBaseURL, cfg.Timeout), nil
}

// EnsureBucket ensures the configured bucket exists.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

func (s *Storage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, bool) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		logger.Error("object upload failed",
			zap.String("bucket", s.backend.Bucket()),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}

	return s.url(key), true
}

func (s *Storage) url(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return s.backend.URL(key)
}

// Unconfigured is the uploader used when no storage provider is set.
type Unconfigured struct{}

func (Unconfigured) Upload(_ context.Context, key string, _ []byte, _ string) (string, bool) {
	logger.Warn("object storage not configured, skipping upload", zap.String("key", key))
	return "", false
}
