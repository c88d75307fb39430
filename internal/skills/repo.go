package skills

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("skill category not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists skill categories. List returns oldest first so the
// rendered order matches the order categories were added.
type Repo interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, cat Category) error
	Update(ctx context.Context, cat Category) error
	Delete(ctx context.Context, id string) error
}
