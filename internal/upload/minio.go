package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/manfredlotz/rcronic/internal/config"
)

// MinioProvider stores transcripts in a MinIO or S3 bucket.
type MinioProvider struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinioProvider() *MinioProvider {
	return &MinioProvider{}
}

func (m *MinioProvider) Name() string {
	return "minio"
}

// Configure builds the MinIO client. Recognised keys: endpoint, access_key,
// secret_key, bucket (required); secure, region, prefix, check_bucket.
// An http:// or https:// scheme on endpoint overrides secure.
func (m *MinioProvider) Configure(settings map[string]any) error {
	endpoint, ok := config.String(settings, "endpoint")
	if !ok {
		return fmt.Errorf("minio: endpoint is required")
	}
	accessKey, ok := config.String(settings, "access_key")
	if !ok {
		return fmt.Errorf("minio: access_key is required")
	}
	secretKey, ok := config.String(settings, "secret_key")
	if !ok {
		return fmt.Errorf("minio: secret_key is required")
	}
	bucket, ok := config.String(settings, "bucket")
	if !ok {
		return fmt.Errorf("minio: bucket is required")
	}

	secure := config.Bool(settings, "secure", true)
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		endpoint, secure = strings.TrimPrefix(endpoint, "http://"), false
	case strings.HasPrefix(endpoint, "https://"):
		endpoint, secure = strings.TrimPrefix(endpoint, "https://"), true
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	if endpoint == "" {
		return fmt.Errorf("minio: invalid endpoint URL")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
		Region: config.StringDefault(settings, "region", "us-east-1"),
	})
	if err != nil {
		return fmt.Errorf("minio: failed to create client: %w", err)
	}

	m.client = client
	m.bucket = bucket
	m.prefix = config.StringDefault(settings, "prefix", "")

	if !config.Bool(settings, "check_bucket", true) {
		return nil
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("minio: bucket %s does not exist", bucket)
	}
	return nil
}

// Upload streams reader to remotePath under the configured prefix.
func (m *MinioProvider) Upload(ctx context.Context, reader io.Reader, remotePath string) error {
	if m.client == nil {
		return fmt.Errorf("minio: provider not configured")
	}

	objectName := m.objectName(remotePath)

	// size -1 lets the client stream with multipart upload
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, -1, minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("minio: failed to upload to %s: %w", objectName, err)
	}
	return nil
}

func (m *MinioProvider) objectName(remotePath string) string {
	if m.prefix == "" {
		return remotePath
	}
	return path.Join(m.prefix, remotePath)
}
