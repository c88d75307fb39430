package resumetemplates

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/james-eo/portfolio/internal/shared/principal"
	"github.com/james-eo/portfolio/resume/render"
)

const maxReviewLen = 500

// Service applies template rules: soft deletion, one default per
// category, and rating aggregation recomputed from rows.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter, p principal.Principal) ([]Template, int, error) {
	if !p.Admin() {
		f.IncludeInactive = false
	}
	if f.Category != "" && !ValidCategory(f.Category) {
		return nil, 0, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, f.Category)
	}
	return s.Repo.List(ctx, f)
}

// Get returns the template. Inactive templates are visible to admins
// only.
func (s *Service) Get(ctx context.Context, id string, p principal.Principal) (Template, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Template{}, err
	}
	if !t.IsActive && !p.Admin() {
		return Template{}, ErrForbidden
	}
	return t, nil
}

// GetActive resolves a template for generation. Missing and inactive
// both read as not found so callers cannot probe deactivated ids.
func (s *Service) GetActive(ctx context.Context, id string) (Template, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Template{}, err
	}
	if !t.IsActive {
		return Template{}, ErrNotFound
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, t Template, createdBy string) (Template, error) {
	t.Name = strings.ToLower(strings.TrimSpace(t.Name))
	if err := validate(t); err != nil {
		return Template{}, err
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.IsActive = true
	t.DownloadCount = 0
	t.RatingAverage = 0
	t.RatingCount = 0
	t.CreatedBy = createdBy
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.Repo.Create(ctx, t); err != nil {
		return Template{}, err
	}
	if t.IsDefault {
		if err := s.Repo.UnsetDefaults(ctx, t.Category, t.ID); err != nil {
			return Template{}, err
		}
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, t Template) (Template, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Template{}, err
	}

	t.ID = id
	t.Name = existing.Name
	if err := validate(t); err != nil {
		return Template{}, err
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, t); err != nil {
		return Template{}, err
	}
	if t.IsDefault {
		if err := s.Repo.UnsetDefaults(ctx, t.Category, id); err != nil {
			return Template{}, err
		}
	}
	return s.Repo.GetByID(ctx, id)
}

// Deactivate is the delete operation. The row stays for history.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.Repo.SetActive(ctx, id, false)
}

// Rate records or replaces the caller's rating and recomputes the
// cached aggregate from all rows.
func (s *Service) Rate(ctx context.Context, templateID string, p principal.Principal, score int, review string) (Template, error) {
	if score < 1 || score > 5 {
		return Template{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if len(review) > maxReviewLen {
		return Template{}, fmt.Errorf("%w: review exceeds %d characters", ErrInvalidInput, maxReviewLen)
	}
	if p.UserID == "" && p.SessionID == "" {
		return Template{}, fmt.Errorf("%w: a user or session identity is required", ErrInvalidInput)
	}

	if _, err := s.GetActive(ctx, templateID); err != nil {
		return Template{}, err
	}

	now := time.Now().UTC()
	rating := Rating{
		ID:         uuid.NewString(),
		TemplateID: templateID,
		UserID:     p.UserID,
		SessionID:  p.SessionID,
		Score:      score,
		Review:     review,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if rating.UserID != "" {
		rating.SessionID = ""
	}
	if err := s.Repo.UpsertRating(ctx, rating); err != nil {
		return Template{}, err
	}

	average, count, err := s.Repo.RatingStats(ctx, templateID)
	if err != nil {
		return Template{}, err
	}
	average = math.Round(average*10) / 10
	if err := s.Repo.SetRatingStats(ctx, templateID, average, count); err != nil {
		return Template{}, err
	}
	return s.Repo.GetByID(ctx, templateID)
}

func (s *Service) Ratings(ctx context.Context, templateID string, limit, offset int) ([]Rating, int, error) {
	if _, err := s.Repo.GetByID(ctx, templateID); err != nil {
		return nil, 0, err
	}
	return s.Repo.ListRatings(ctx, templateID, limit, offset)
}

// RecordDownload bumps the download counter.
func (s *Service) RecordDownload(ctx context.Context, templateID string) error {
	return s.Repo.IncrementDownloads(ctx, templateID)
}

func validate(t Template) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.ContainsAny(t.Name, " /\\") {
		return fmt.Errorf("%w: name must not contain spaces or slashes", ErrInvalidInput)
	}
	if strings.TrimSpace(t.DisplayName) == "" {
		return fmt.Errorf("%w: displayName is required", ErrInvalidInput)
	}
	if !ValidCategory(t.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, t.Category)
	}
	// Layout parameters are checked here so a bad value fails the
	// admin's write, not every later generation.
	if t.Data.ColorScheme != "" && !render.ValidColorScheme(t.Data.ColorScheme) {
		return fmt.Errorf("%w: unknown color scheme %q", ErrInvalidInput, t.Data.ColorScheme)
	}
	if t.Data.Typography.FontFamily != "" && !render.ValidTypography(t.Data.Typography.FontFamily) {
		return fmt.Errorf("%w: unknown typography %q", ErrInvalidInput, t.Data.Typography.FontFamily)
	}
	for _, name := range t.Data.SectionOrder {
		if !render.ValidSection(name) {
			return fmt.Errorf("%w: unknown section %q", ErrInvalidInput, name)
		}
	}
	return nil
}
