package experience

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Entry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Entry)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, copyEntry(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return copyEntry(e), nil
}

func (r *MemoryRepo) Create(ctx context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.ID] = copyEntry(e)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[e.ID]
	if !ok {
		return ErrNotFound
	}
	e.CreatedAt = existing.CreatedAt
	r.items[e.ID] = copyEntry(e)
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func copyEntry(e Entry) Entry {
	cp := e
	cp.Description = append([]string(nil), e.Description...)
	cp.Skills = append([]string(nil), e.Skills...)
	return cp
}

var _ Repo = (*MemoryRepo)(nil)
