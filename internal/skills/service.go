package skills

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

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, cat Category) (Category, error) {
	if err := validate(cat); err != nil {
		return Category{}, err
	}
	now := time.Now().UTC()
	cat.ID = uuid.NewString()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	if err := s.Repo.Create(ctx, cat); err != nil {
		return Category{}, err
	}
	return cat, nil
}

func (s *Service) Update(ctx context.Context, id string, cat Category) (Category, error) {
	if err := validate(cat); err != nil {
		return Category{}, err
	}
	cat.ID = id
	cat.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, cat); err != nil {
		return Category{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(cat Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for _, skill := range cat.Skills {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("%w: skills must not be blank", ErrInvalidInput)
		}
	}
	return nil
}
