package uploads

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("upload not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists upload records.
type Repo interface {
	Create(ctx context.Context, u Upload) error
	LatestByKind(ctx context.Context, kind string) (Upload, error)
	List(ctx context.Context, kind string) ([]Upload, error)
	Delete(ctx context.Context, id string) (Upload, error)
}
