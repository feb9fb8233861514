package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/indieinfra/imagebin/storage/metadata"
)

type failingFindStore struct {
	metadata.Store
}

func (failingFindStore) FindAll(context.Context) ([]metadata.ImageRecord, error) {
	return nil, errors.New("db down")
}

type failingDeleteStore struct {
	metadata.Store
}

func (s failingDeleteStore) DeleteByID(context.Context, string) error {
	return errors.New("db down")
}

func TestListAll_Empty(t *testing.T) {
	gallery := NewGallery(&stubMediaStore{}, metadata.NewMemoryStore())

	records, err := gallery.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if records == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestListAll_NewestFirst(t *testing.T) {
	store := metadata.NewMemoryStore()
	gallery := NewGallery(&stubMediaStore{}, store)

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		record := &metadata.ImageRecord{
			URL:        "https://cdn.example.com/img",
			PublicID:   "uploads/img",
			UploadedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if _, err := store.Insert(context.Background(), record); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	records, err := gallery.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].UploadedAt.After(records[i-1].UploadedAt) {
			t.Fatalf("records not sorted newest first: %v before %v",
				records[i-1].UploadedAt, records[i].UploadedAt)
		}
	}
}

func TestListAll_StoreError(t *testing.T) {
	gallery := NewGallery(&stubMediaStore{}, failingFindStore{})

	if _, err := gallery.ListAll(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestDeleteByID_Success(t *testing.T) {
	mediaStore := &stubMediaStore{}
	store := metadata.NewMemoryStore()
	gallery := NewGallery(mediaStore, store)

	id, err := store.Insert(context.Background(), &metadata.ImageRecord{
		URL:      "https://cdn.example.com/uploads/img.png",
		PublicID: "uploads/img.png",
	})
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	if err := gallery.DeleteByID(context.Background(), id); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	if len(mediaStore.removed) != 1 || mediaStore.removed[0] != "uploads/img.png" {
		t.Fatalf("expected remote object to be removed, got %v", mediaStore.removed)
	}

	if _, err := store.FindByID(context.Background(), id); !errors.Is(err, metadata.ErrNotFound) {
		t.Fatalf("expected record to be gone, got %v", err)
	}

	// A second delete of the same id reports not found.
	if err := gallery.DeleteByID(context.Background(), id); !errors.Is(err, metadata.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteByID_UnknownID(t *testing.T) {
	mediaStore := &stubMediaStore{}
	gallery := NewGallery(mediaStore, metadata.NewMemoryStore())

	err := gallery.DeleteByID(context.Background(), "does-not-exist")
	if !errors.Is(err, metadata.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(mediaStore.removed) != 0 {
		t.Fatalf("expected no remote removal for unknown id")
	}
}

func TestDeleteByID_RemoteFailureKeepsRecord(t *testing.T) {
	mediaStore := &stubMediaStore{removeErr: errors.New("provider down")}
	store := metadata.NewMemoryStore()
	gallery := NewGallery(mediaStore, store)

	id, err := store.Insert(context.Background(), &metadata.ImageRecord{
		URL:      "https://cdn.example.com/uploads/img.png",
		PublicID: "uploads/img.png",
	})
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	if err := gallery.DeleteByID(context.Background(), id); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	// The local record must survive a failed remote delete.
	if _, err := store.FindByID(context.Background(), id); err != nil {
		t.Fatalf("expected record to remain, got %v", err)
	}
}

func TestDeleteByID_LocalDeleteError(t *testing.T) {
	mediaStore := &stubMediaStore{}
	store := metadata.NewMemoryStore()

	id, err := store.Insert(context.Background(), &metadata.ImageRecord{
		URL:      "https://cdn.example.com/uploads/img.png",
		PublicID: "uploads/img.png",
	})
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	gallery := NewGallery(mediaStore, failingDeleteStore{Store: store})

	if err := gallery.DeleteByID(context.Background(), id); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
