package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev when no database is
// configured, and in tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	current *Profile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Get(ctx context.Context) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return Profile{}, ErrNotFound
	}
	return *r.current, nil
}

func (r *MemoryRepo) Create(ctx context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		return ErrAlreadyExists
	}
	cp := p
	r.current = &cp
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return ErrNotFound
	}
	cp := p
	cp.CreatedAt = r.current.CreatedAt
	r.current = &cp
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return ErrNotFound
	}
	r.current = nil
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
