package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/vibe-gaming/registration/internal/config"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSClient stores objects in Google Cloud Storage. Without a credentials
// file it falls back to application default credentials.
type GCSClient struct {
	client    *storage.Client
	bucket    string
	projectID string
}

func NewGCSClient(ctx context.Context, cfg config.StorageConfig) (*GCSClient, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("gcs bucket is required")
	}

	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &GCSClient{
		client:    client,
		bucket:    cfg.Bucket,
		projectID: cfg.GCSProjectID,
	}, nil
}

// EnsureBucket creates the bucket when missing, which needs a project id.
func (c *GCSClient) EnsureBucket(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucket)

	_, err := bucket.Attrs(ctx)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, storage.ErrBucketNotExist):
		return fmt.Errorf("check gcs bucket %s: %w", c.bucket, err)
	case c.projectID == "":
		return fmt.Errorf("gcs bucket %s is missing and STORAGE_GCS_PROJECT_ID is empty", c.bucket)
	}

	return bucket.Create(ctx, c.projectID, nil)
}

// Put streams r into the object; GCS writers need no size up front.
func (c *GCSClient) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) error {
	w := c.client.Bucket(c.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// URL returns the public storage.googleapis.com address. Objects are only
// readable there when the bucket grants allUsers read access.
func (c *GCSClient) URL(key string) string {
	return gcsPublicURL(c.bucket, key)
}

func (c *GCSClient) Bucket() string {
	return c.bucket
}

func gcsPublicURL(bucket, key string) string {
	return gcsPublicHost + "/" + bucket + "/" + key
}
