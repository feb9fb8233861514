package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/indieinfra/imagebin/config"
	"github.com/indieinfra/imagebin/storage/media"
)

const defaultKeyPrefix = "uploads"

type s3Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

var newMinioClient = func(endpoint string, opts *minio.Options) (s3Client, error) {
	return minio.New(endpoint, opts)
}

// StoreImpl uploads media to S3 or any compatible service (R2, Backblaze,
// MinIO). The object key doubles as the provider handle for deletion.
type StoreImpl struct {
	client       s3Client
	bucket       string
	prefix       string
	publicBase   string
	endpointHost string
	region       string
}

func NewS3MediaStore(cfg *config.Media) (*StoreImpl, error) {
	if cfg == nil || cfg.S3 == nil {
		return nil, fmt.Errorf("s3 media config is nil")
	}

	s3cfg := cfg.S3
	region := strings.TrimSpace(s3cfg.Region)
	if strings.EqualFold(region, "auto") {
		region = ""
	}

	endpointHost := strings.TrimSpace(s3cfg.Endpoint)
	if endpointHost == "" {
		if region == "" {
			endpointHost = "s3.amazonaws.com"
		} else {
			endpointHost = fmt.Sprintf("s3.%s.amazonaws.com", region)
		}
	} else {
		if parsed, err := url.Parse(endpointHost); err == nil && parsed.Host != "" {
			endpointHost = parsed.Host
		}
	}

	client, err := newMinioClient(endpointHost, &minio.Options{
		Creds:        credentials.NewStaticV4(s3cfg.AccessKeyId, s3cfg.SecretKeyId, ""),
		Secure:       true,
		Region:       region,
		BucketLookup: minio.BucketLookupAuto,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, s3cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to verify s3 bucket %q: %w", s3cfg.Bucket, err)
	}

	if !exists {
		return nil, fmt.Errorf("s3 bucket %q does not exist or is not accessible", s3cfg.Bucket)
	}

	prefix := strings.Trim(s3cfg.KeyPrefix, "/")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &StoreImpl{
		client:       client,
		bucket:       s3cfg.Bucket,
		prefix:       prefix,
		publicBase:   strings.TrimSuffix(s3cfg.PublicUrl, "/"),
		endpointHost: endpointHost,
		region:       s3cfg.Region,
	}, nil
}

func (s *StoreImpl) Put(ctx context.Context, r io.Reader, size int64, contentType string) (*media.StoredObject, error) {
	key := s.objectKey(contentType)
	opts := minio.PutObjectOptions{ContentType: contentType}

	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, opts); err != nil {
		return nil, fmt.Errorf("upload to s3 failed: %w", err)
	}

	return &media.StoredObject{
		URL:      s.objectURL(key),
		PublicID: key,
	}, nil
}

func (s *StoreImpl) Remove(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("object key is required")
	}

	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete from s3 failed: %w", err)
	}

	return nil
}

// objectKey generates a unique key under the configured prefix, with the
// extension derived from the declared content type.
func (s *StoreImpl) objectKey(contentType string) string {
	ext := ""
	if m := mimetype.Lookup(contentType); m != nil {
		ext = m.Extension()
	}

	return path.Join(s.prefix, uuid.New().String()+ext)
}

func (s *StoreImpl) objectURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicBase, key)
}
