package media

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
)

// NoopStore discards uploads and hands out synthetic URLs. It backs the
// "noop" strategy so the service can run without a real provider.
type NoopStore struct{}

func (ms *NoopStore) Put(ctx context.Context, r io.Reader, size int64, contentType string) (*StoredObject, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return nil, fmt.Errorf("drain upload: %w", err)
	}

	id := uuid.New().String()
	log.Printf("received no-op media upload: id=%v size=%v content-type=%v", id, n, contentType)

	return &StoredObject{
		URL:      "https://noop.example.org/" + id,
		PublicID: id,
	}, nil
}

func (ms *NoopStore) Remove(ctx context.Context, publicID string) error {
	log.Printf("received no-op media delete: id=%v", publicID)
	return nil
}
