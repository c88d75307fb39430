package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxSummaryLen = 1000

// Service applies the singleton rules on top of the repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.Repo.Get(ctx)
}

// Create inserts the profile, failing if one already exists.
func (s *Service) Create(ctx context.Context, p Profile) (Profile, error) {
	if err := validate(p); err != nil {
		return Profile{}, err
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Put updates the profile, creating it if none exists yet.
func (s *Service) Put(ctx context.Context, p Profile) (Profile, error) {
	if err := validate(p); err != nil {
		return Profile{}, err
	}
	now := time.Now().UTC()

	existing, err := s.Repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			p.ID = uuid.NewString()
			p.CreatedAt = now
			p.UpdatedAt = now
			if createErr := s.Repo.Create(ctx, p); createErr != nil {
				return Profile{}, createErr
			}
			return p, nil
		}
		return Profile{}, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = now
	if err := s.Repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context) error {
	return s.Repo.Delete(ctx)
}

func validate(p Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Summary) == "" {
		return fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}
	if len(p.Summary) > maxSummaryLen {
		return fmt.Errorf("%w: summary exceeds %d characters", ErrInvalidInput, maxSummaryLen)
	}
	return nil
}
