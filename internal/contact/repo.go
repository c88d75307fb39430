package contact

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("message not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists contact messages, newest first.
type Repo interface {
	List(ctx context.Context) ([]Message, error)
	Create(ctx context.Context, m Message) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
