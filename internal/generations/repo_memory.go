package generations

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Generation
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Generation)}
}

func (r *MemoryRepo) Create(ctx context.Context, g Generation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[g.ID] = g
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.items[id]
	if !ok {
		return Generation{}, ErrNotFound
	}
	return g, nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, userID, sessionID string) ([]Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Generation
	for _, g := range r.items {
		if userID != "" {
			if g.UserID == userID {
				out = append(out, g)
			}
			continue
		}
		if sessionID != "" && g.SessionID == sessionID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) MarkGenerated(ctx context.Context, id, fileKey string, fileSize int64, generatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	if !CanTransition(g.Status, StatusGenerated) {
		return ErrInvalidTransition
	}
	g.Status = StatusGenerated
	g.FileKey = fileKey
	g.FileSize = fileSize
	g.GeneratedAt = &generatedAt
	g.UpdatedAt = time.Now().UTC()
	r.items[id] = g
	return nil
}

func (r *MemoryRepo) MarkFailed(ctx context.Context, id, errorMessage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	if !CanTransition(g.Status, StatusFailed) {
		return ErrInvalidTransition
	}
	g.Status = StatusFailed
	g.ErrorMessage = errorMessage
	g.UpdatedAt = time.Now().UTC()
	r.items[id] = g
	return nil
}

func (r *MemoryRepo) SetDownloaded(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	g.DownloadedAt = &at
	g.UpdatedAt = time.Now().UTC()
	r.items[id] = g
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

func (r *MemoryRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Generation
	for _, g := range r.items {
		if now.After(g.ExpiresAt) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExpiresAt.Before(out[j].ExpiresAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
