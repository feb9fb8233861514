package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/indieinfra/imagebin/storage/media"
	"github.com/indieinfra/imagebin/storage/metadata"
)

// Gallery lists stored images and deletes them, remote object first.
type Gallery struct {
	media media.Store
	store metadata.Store
}

func NewGallery(mediaStore media.Store, metadataStore metadata.Store) *Gallery {
	return &Gallery{
		media: mediaStore,
		store: metadataStore,
	}
}

// ListAll returns every image record, most recently uploaded first.
func (g *Gallery) ListAll(ctx context.Context) ([]metadata.ImageRecord, error) {
	records, err := g.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list image records: %w", ErrUpstream, err)
	}

	return records, nil
}

// DeleteByID removes the remote object first, then the local record. A
// remote failure leaves the record intact, so a crash between the two
// steps can only orphan a local record, never a remote object.
func (g *Gallery) DeleteByID(ctx context.Context, id string) error {
	record, err := g.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return err
		}

		return fmt.Errorf("%w: find image record: %w", ErrUpstream, err)
	}

	if err := g.media.Remove(ctx, record.PublicID); err != nil {
		return fmt.Errorf("%w: delete media object: %w", ErrUpstream, err)
	}

	if err := g.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return err
		}

		return fmt.Errorf("%w: delete image record: %w", ErrUpstream, err)
	}

	return nil
}
