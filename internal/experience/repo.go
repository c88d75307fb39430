package experience

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("experience not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists work-history entries. List orders by the explicit sort
// order, newest first within the same order value.
type Repo interface {
	List(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	Create(ctx context.Context, e Entry) error
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
}
