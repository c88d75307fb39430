package skills

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Category
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Category)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, 0, len(r.items))
	for _, cat := range r.items {
		out = append(out, copyCategory(cat))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.items[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return copyCategory(cat), nil
}

func (r *MemoryRepo) Create(ctx context.Context, cat Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[cat.ID] = copyCategory(cat)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, cat Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[cat.ID]
	if !ok {
		return ErrNotFound
	}
	cat.CreatedAt = existing.CreatedAt
	r.items[cat.ID] = copyCategory(cat)
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

func copyCategory(cat Category) Category {
	cp := cat
	cp.Skills = append([]string(nil), cat.Skills...)
	return cp
}

var _ Repo = (*MemoryRepo)(nil)
