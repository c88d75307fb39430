package resumetemplates

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("template not found")
	ErrAlreadyExists = errors.New("template already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden")
)

// Filter narrows and pages template listings.
type Filter struct {
	Category        string
	Tags            []string
	Search          string
	IncludeInactive bool
	Sort            string // rating | downloads | newest | name
	Limit           int
	Offset          int
}

// Repo persists templates and their ratings.
type Repo interface {
	List(ctx context.Context, f Filter) ([]Template, int, error)
	GetByID(ctx context.Context, id string) (Template, error)
	GetByName(ctx context.Context, name string) (Template, error)
	Create(ctx context.Context, t Template) error
	Update(ctx context.Context, t Template) error
	SetActive(ctx context.Context, id string, active bool) error
	// UnsetDefaults clears isDefault on every template in the category
	// except the given id.
	UnsetDefaults(ctx context.Context, category, exceptID string) error
	IncrementDownloads(ctx context.Context, id string) error
	SetRatingStats(ctx context.Context, id string, average float64, count int) error

	UpsertRating(ctx context.Context, r Rating) error
	ListRatings(ctx context.Context, templateID string, limit, offset int) ([]Rating, int, error)
	// RatingStats recomputes the aggregate from the template's rating
	// rows, skipping reported ones so the cached numbers match what
	// ListRatings shows.
	RatingStats(ctx context.Context, templateID string) (average float64, count int, err error)
}
