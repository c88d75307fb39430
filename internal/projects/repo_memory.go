package projects

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Project
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Project)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, copyProject(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return copyProject(p), nil
}

func (r *MemoryRepo) Create(ctx context.Context, p Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = copyProject(p)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, p Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	r.items[p.ID] = copyProject(p)
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

func copyProject(p Project) Project {
	cp := p
	cp.Outcomes = append([]string(nil), p.Outcomes...)
	cp.Technologies = append([]string(nil), p.Technologies...)
	return cp
}

var _ Repo = (*MemoryRepo)(nil)
