package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/indieinfra/imagebin/config"
)

type stubS3Client struct {
	bucketExists  bool
	bucketErr     error
	putCalled     bool
	removeCalled  bool
	lastPutKey    string
	lastPutType   string
	lastRemoveKey string
	putErr        error
	removeErr     error
}

func (c *stubS3Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return c.bucketExists, c.bucketErr
}

func (c *stubS3Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	c.putCalled = true
	c.lastPutKey = objectName
	c.lastPutType = opts.ContentType
	if c.putErr != nil {
		return minio.UploadInfo{}, c.putErr
	}
	return minio.UploadInfo{}, nil
}

func (c *stubS3Client) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	c.removeCalled = true
	c.lastRemoveKey = objectName
	if c.removeErr != nil {
		return c.removeErr
	}
	return nil
}

func withStubClient(t *testing.T, stub *stubS3Client) func() {
	prev := newMinioClient
	newMinioClient = func(endpoint string, opts *minio.Options) (s3Client, error) {
		return stub, nil
	}

	return func() { newMinioClient = prev }
}

func baseMediaConfig() *config.Media {
	return &config.Media{
		Strategy: "s3",
		S3: &config.S3MediaStrategy{
			AccessKeyId: "key",
			SecretKeyId: "secret",
			Region:      "us-east-1",
			Bucket:      "bucket",
			Endpoint:    "https://s3.example.com",
			PublicUrl:   "https://cdn.example.com",
		},
	}
}

func newTestStore(t *testing.T, stub *stubS3Client) *StoreImpl {
	t.Helper()
	restore := withStubClient(t, stub)
	t.Cleanup(restore)

	store, err := NewS3MediaStore(baseMediaConfig())
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	return store
}

func TestNewS3MediaStore_NilConfig(t *testing.T) {
	if _, err := NewS3MediaStore(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNewS3MediaStore_ClientError(t *testing.T) {
	prev := newMinioClient
	newMinioClient = func(endpoint string, opts *minio.Options) (s3Client, error) {
		return nil, errors.New("boom")
	}
	t.Cleanup(func() { newMinioClient = prev })

	if _, err := NewS3MediaStore(baseMediaConfig()); err == nil {
		t.Fatalf("expected error when client creation fails")
	}
}

func TestNewS3MediaStore_BucketExistsError(t *testing.T) {
	stub := &stubS3Client{bucketExists: false, bucketErr: errors.New("check failed")}
	defer withStubClient(t, stub)()

	if _, err := NewS3MediaStore(baseMediaConfig()); err == nil {
		t.Fatalf("expected error when bucket check fails")
	}
}

func TestNewS3MediaStore_BucketMissing(t *testing.T) {
	stub := &stubS3Client{bucketExists: false}
	defer withStubClient(t, stub)()

	if _, err := NewS3MediaStore(baseMediaConfig()); err == nil {
		t.Fatalf("expected error when bucket does not exist")
	}
}

func TestNewS3MediaStore_DefaultsEndpointAndPrefix(t *testing.T) {
	stub := &stubS3Client{bucketExists: true}
	restore := withStubClient(t, stub)
	defer restore()

	cfg := baseMediaConfig()
	cfg.S3.Endpoint = ""
	cfg.S3.Region = "auto"

	store, err := NewS3MediaStore(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.endpointHost != "s3.amazonaws.com" {
		t.Fatalf("unexpected endpoint host: %s", store.endpointHost)
	}
	if store.prefix != "uploads" {
		t.Fatalf("expected default key prefix, got %q", store.prefix)
	}
}

func TestPut_GeneratesKeyUnderPrefix(t *testing.T) {
	stub := &stubS3Client{bucketExists: true}
	store := newTestStore(t, stub)

	data := []byte("not really a png")
	object, err := store.Put(context.Background(), bytes.NewReader(data), int64(len(data)), "image/png")
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	if !stub.putCalled {
		t.Fatalf("expected PutObject to be called")
	}
	if !strings.HasPrefix(stub.lastPutKey, "uploads/") || !strings.HasSuffix(stub.lastPutKey, ".png") {
		t.Fatalf("unexpected object key: %s", stub.lastPutKey)
	}
	if stub.lastPutType != "image/png" {
		t.Fatalf("expected content type to be forwarded, got %q", stub.lastPutType)
	}
	if object.PublicID != stub.lastPutKey {
		t.Fatalf("expected public id to be the object key, got %q", object.PublicID)
	}
	if object.URL != "https://cdn.example.com/"+stub.lastPutKey {
		t.Fatalf("unexpected url: %s", object.URL)
	}
}

func TestPut_DistinctKeysPerUpload(t *testing.T) {
	stub := &stubS3Client{bucketExists: true}
	store := newTestStore(t, stub)

	first, err := store.Put(context.Background(), strings.NewReader("a"), 1, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	second, err := store.Put(context.Background(), strings.NewReader("b"), 1, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	if first.PublicID == second.PublicID {
		t.Fatalf("expected distinct keys, got %q twice", first.PublicID)
	}
}

func TestPut_Error(t *testing.T) {
	stub := &stubS3Client{bucketExists: true, putErr: errors.New("upload failed")}
	store := newTestStore(t, stub)

	if _, err := store.Put(context.Background(), strings.NewReader("x"), 1, "image/png"); err == nil {
		t.Fatalf("expected put error to propagate")
	}
}

func TestRemove_UsesKey(t *testing.T) {
	stub := &stubS3Client{bucketExists: true}
	store := newTestStore(t, stub)

	if err := store.Remove(context.Background(), "uploads/abc.png"); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if stub.lastRemoveKey != "uploads/abc.png" {
		t.Fatalf("unexpected remove key: %s", stub.lastRemoveKey)
	}
}

func TestRemove_EmptyKey(t *testing.T) {
	stub := &stubS3Client{bucketExists: true}
	store := newTestStore(t, stub)

	if err := store.Remove(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if stub.removeCalled {
		t.Fatalf("expected no remote call for empty key")
	}
}

func TestRemove_Error(t *testing.T) {
	stub := &stubS3Client{bucketExists: true, removeErr: errors.New("delete failed")}
	store := newTestStore(t, stub)

	if err := store.Remove(context.Background(), "uploads/abc.png"); err == nil {
		t.Fatalf("expected remove error to propagate")
	}
}
