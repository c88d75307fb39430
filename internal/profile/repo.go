package profile

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

// Repo persists the single profile record.
type Repo interface {
	Get(ctx context.Context) (Profile, error)
	Create(ctx context.Context, p Profile) error
	Update(ctx context.Context, p Profile) error
	Delete(ctx context.Context) error
}
