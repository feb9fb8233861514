package media

import (
	"context"
	"io"
)

// StoredObject describes a successfully stored media object.
type StoredObject struct {
	// URL is the durable, publicly fetchable address of the object.
	URL string
	// PublicID is the opaque handle used to delete the object later. It
	// is never used for fetching.
	PublicID string
}

// Store uploads media objects to a hosting provider and deletes them by
// their provider-issued handle.
type Store interface {
	Put(ctx context.Context, r io.Reader, size int64, contentType string) (*StoredObject, error)
	Remove(ctx context.Context, publicID string) error
}
