package fights

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
)

// InMemoryRepository implements Repository in memory
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.FightRecord
}

// NewInMemoryRepository creates a new in-memory fight record repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records: make(map[string]*entities.FightRecord),
	}
}

// Create stores a copy of the record
func (r *InMemoryRepository) Create(_ context.Context, record *entities.FightRecord) error {
	if record == nil {
		return simerr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return simerr.InvalidArgument("record ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return simerr.AlreadyExistsf("fight record %s already exists", record.ID)
	}
	r.records[record.ID] = cloneRecord(record)

	return nil
}

// Get returns a copy of the stored record
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.FightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, simerr.NotFoundf("fight record %s not found", id)
	}

	return cloneRecord(record), nil
}

// ListRecent returns copies ordered by end time, newest first. Ties keep ID order.
func (r *InMemoryRepository) ListRecent(_ context.Context, limit int) ([]*entities.FightRecord, error) {
	if limit <= 0 {
		return nil, simerr.InvalidArgumentf("limit must be positive, got %d", limit)
	}

	r.mu.RLock()
	out := make([]*entities.FightRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, cloneRecord(record))
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *entities.FightRecord) int {
		if c := b.EndedAt.Compare(a.EndedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return simerr.NotFoundf("fight record %s not found", id)
	}
	delete(r.records, id)

	return nil
}

func cloneRecord(record *entities.FightRecord) *entities.FightRecord {
	out := *record
	out.Members = slices.Clone(record.Members)
	return &out
}
