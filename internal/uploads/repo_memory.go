package uploads

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Upload
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Upload)}
}

func (r *MemoryRepo) Create(ctx context.Context, u Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[u.ID] = u
	return nil
}

func (r *MemoryRepo) LatestByKind(ctx context.Context, kind string) (Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest Upload
	found := false
	for _, u := range r.items {
		if u.Kind != kind {
			continue
		}
		if !found || u.CreatedAt.After(latest.CreatedAt) {
			latest = u
			found = true
		}
	}
	if !found {
		return Upload{}, ErrNotFound
	}
	return latest, nil
}

func (r *MemoryRepo) List(ctx context.Context, kind string) ([]Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Upload
	for _, u := range r.items {
		if kind == "" || u.Kind == kind {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return Upload{}, ErrNotFound
	}
	delete(r.items, id)
	return u, nil
}

var _ Repo = (*MemoryRepo)(nil)
