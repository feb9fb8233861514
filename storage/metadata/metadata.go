package metadata

import (
	"context"
	"time"
)

// ImageRecord is the persisted reference to a remotely stored image. The
// JSON names are the public API contract: the provider handle is exposed
// as "publicId" and the batch flag as "isMultiple".
type ImageRecord struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	URL        string    `bson:"url" json:"url"`
	PublicID   string    `bson:"publicId" json:"publicId"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
	IsBatch    bool      `bson:"isMultiple" json:"isMultiple"`
}

// Store is the persistence boundary for image records. Records are
// immutable once inserted; there is no update operation.
type Store interface {
	// Insert persists the record, assigning its id and, when unset, its
	// upload timestamp. Returns the assigned id.
	Insert(ctx context.Context, record *ImageRecord) (string, error)

	// FindAll returns every record ordered by upload time, most recent
	// first. An empty store yields an empty slice, not nil.
	FindAll(ctx context.Context) ([]ImageRecord, error)

	// FindByID returns the record with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*ImageRecord, error)

	// DeleteByID removes the record with the given id, or returns
	// ErrNotFound if no such record exists.
	DeleteByID(ctx context.Context, id string) error
}
