package education

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("education not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists education entries. List orders by explicit sort order;
// ListRecent orders newest first, which is what the rendered resume
// uses.
type Repo interface {
	List(ctx context.Context) ([]Entry, error)
	ListRecent(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	Create(ctx context.Context, e Entry) error
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
}
