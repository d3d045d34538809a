package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/vibe-gaming/registration/internal/config"
)

// MinioClient stores objects in a MinIO server addressed by host:port.
type MinioClient struct {
	client *minio.Client
	bucket string
	region string
}

func NewMinioClient(cfg config.StorageConfig) (*MinioClient, error) {
	switch {
	case strings.TrimSpace(cfg.Endpoint) == "":
		return nil, errors.New("minio endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return nil, errors.New("minio access key and secret key are required")
	case strings.TrimSpace(cfg.Bucket) == "":
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client for %s: %w", cfg.Endpoint, err)
	}

	return &MinioClient{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

func (c *MinioClient) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check minio bucket %s: %w", c.bucket, err)
	}
	if exists {
		return nil
	}

	return c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: c.region})
}

func (c *MinioClient) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// URL returns the path-style address on the MinIO endpoint. MinIO has no
// virtual-hosted default, so bucket and key both live in the path.
func (c *MinioClient) URL(key string) string {
	endpoint := c.client.EndpointURL()
	u := url.URL{
		Scheme: endpoint.Scheme,
		Host:   endpoint.Host,
		Path:   path.Join("/", c.bucket, key),
	}
	return u.String()
}

func (c *MinioClient) Bucket() string {
	return c.bucket
}
