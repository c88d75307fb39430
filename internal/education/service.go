package education

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, e Entry) (Entry, error) {
	if err := validate(e); err != nil {
		return Entry{}, err
	}
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := s.Repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, e Entry) (Entry, error) {
	if err := validate(e); err != nil {
		return Entry{}, err
	}
	e.ID = id
	e.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(e Entry) error {
	if strings.TrimSpace(e.Degree) == "" {
		return fmt.Errorf("%w: degree is required", ErrInvalidInput)
	}
	if strings.TrimSpace(e.Institution) == "" {
		return fmt.Errorf("%w: institution is required", ErrInvalidInput)
	}
	if strings.TrimSpace(e.Year) == "" {
		return fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	return nil
}
