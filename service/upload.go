package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/indieinfra/imagebin/storage/media"
	"github.com/indieinfra/imagebin/storage/metadata"
)

const (
	DefaultMaxFileSize  = 5 << 20
	DefaultMaxFileCount = 10
)

// File is a single in-memory upload candidate.
type File struct {
	Data        []byte
	ContentType string
}

// Limits bounds what the uploader accepts before touching the media store.
type Limits struct {
	MaxFileSize  int64
	MaxFileCount int
}

// Uploader forwards image files to the media store and persists one
// metadata record per successfully stored file.
type Uploader struct {
	media  media.Store
	store  metadata.Store
	limits Limits
}

func NewUploader(mediaStore media.Store, metadataStore metadata.Store, limits Limits) *Uploader {
	if limits.MaxFileSize <= 0 {
		limits.MaxFileSize = DefaultMaxFileSize
	}
	if limits.MaxFileCount <= 0 {
		limits.MaxFileCount = DefaultMaxFileCount
	}

	return &Uploader{
		media:  mediaStore,
		store:  metadataStore,
		limits: limits,
	}
}

// UploadOne stores a single image remotely and persists its record.
func (u *Uploader) UploadOne(ctx context.Context, data []byte, contentType string) (*metadata.ImageRecord, error) {
	contentType, err := u.validateFile(File{Data: data, ContentType: contentType})
	if err != nil {
		return nil, err
	}

	return u.uploadFile(ctx, data, contentType, false)
}

// UploadMany stores a batch of images sequentially, in input order. Every
// file is validated before the first remote call; a remote failure aborts
// the rest of the batch but leaves already-persisted records in place.
func (u *Uploader) UploadMany(ctx context.Context, files []File) ([]metadata.ImageRecord, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no image files provided", ErrInvalidInput)
	}

	if len(files) > u.limits.MaxFileCount {
		return nil, fmt.Errorf("%w: at most %d files per batch", ErrInvalidInput, u.limits.MaxFileCount)
	}

	contentTypes := make([]string, len(files))
	for i, f := range files {
		contentType, err := u.validateFile(f)
		if err != nil {
			return nil, fmt.Errorf("file %d: %w", i+1, err)
		}
		contentTypes[i] = contentType
	}

	records := make([]metadata.ImageRecord, 0, len(files))
	for i, f := range files {
		record, err := u.uploadFile(ctx, f.Data, contentTypes[i], true)
		if err != nil {
			return nil, fmt.Errorf("file %d: %w", i+1, err)
		}

		records = append(records, *record)
	}

	return records, nil
}

func (u *Uploader) uploadFile(ctx context.Context, data []byte, contentType string, batch bool) (*metadata.ImageRecord, error) {
	object, err := u.media.Put(ctx, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: store media object: %w", ErrUpstream, err)
	}

	record := &metadata.ImageRecord{
		URL:      object.URL,
		PublicID: object.PublicID,
		IsBatch:  batch,
	}

	if _, err := u.store.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: persist image record: %w", ErrUpstream, err)
	}

	return record, nil
}

// validateFile checks size and type bounds and returns the effective
// content type, sniffed from the payload when the client did not declare
// a usable one.
func (u *Uploader) validateFile(f File) (string, error) {
	if len(f.Data) == 0 {
		return "", fmt.Errorf("%w: no image file provided", ErrInvalidInput)
	}

	if int64(len(f.Data)) > u.limits.MaxFileSize {
		return "", fmt.Errorf("%w: file exceeds the %d byte limit", ErrInvalidInput, u.limits.MaxFileSize)
	}

	contentType := f.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(f.Data).String()
	}

	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: only image files are allowed", ErrInvalidInput)
	}

	return contentType, nil
}
