package metadata

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps image records in process memory. It backs the
// "memory" strategy for local development and tests; records do not
// survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]ImageRecord
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]ImageRecord),
		now:     time.Now,
	}
}

func (s *MemoryStore) Insert(ctx context.Context, record *ImageRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = uuid.New().String()
	if record.UploadedAt.IsZero() {
		record.UploadedAt = s.now().UTC()
	}

	s.records[record.ID] = *record

	return record.ID, nil
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]ImageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]ImageRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UploadedAt.After(records[j].UploadedAt)
	})

	return records, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*ImageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &record, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}

	delete(s.records, id)

	return nil
}
