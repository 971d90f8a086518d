package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemorySnapshotRepository is an in-memory Repository used in tests and when
// running without persistence.
type MemorySnapshotRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Snapshot
}

// NewMemorySnapshotRepository constructs an empty in-memory repository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		records: map[uuid.UUID]*Snapshot{},
	}
}

func (r *MemorySnapshotRepository) Create(_ context.Context, record *Snapshot) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	stored := *record
	r.records[record.ID] = &stored
	return record, nil
}

func (r *MemorySnapshotRepository) Update(_ context.Context, record *Snapshot) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return nil, ErrSnapshotNotFound
	}
	stored := *record
	r.records[record.ID] = &stored
	return record, nil
}

func (r *MemorySnapshotRepository) GetByContentfulID(_ context.Context, contentfulID, cmsLocale string) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.ContentfulID != contentfulID {
			continue
		}
		if cmsLocale != "" && record.Locale != cmsLocale {
			continue
		}
		found := *record
		return &found, nil
	}
	return nil, ErrSnapshotNotFound
}

func (r *MemorySnapshotRepository) List(_ context.Context, contentType string) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*Snapshot
	for _, record := range r.records {
		if contentType != "" && record.ContentType != contentType {
			continue
		}
		found := *record
		records = append(records, &found)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].LastModified.After(records[j].LastModified)
	})
	return records, nil
}
