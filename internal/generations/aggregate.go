package generations

import (
	"context"
	"errors"
	"fmt"

	"github.com/james-eo/portfolio/internal/education"
	"github.com/james-eo/portfolio/internal/experience"
	"github.com/james-eo/portfolio/internal/profile"
	"github.com/james-eo/portfolio/internal/projects"
	"github.com/james-eo/portfolio/internal/shared/telemetry"
	"github.com/james-eo/portfolio/internal/skills"
	"github.com/james-eo/portfolio/resume/model"
)

// Reader views over the content repositories. Only the operations the
// aggregator needs.
type (
	ProfileReader interface {
		Get(ctx context.Context) (profile.Profile, error)
	}
	SkillsReader interface {
		List(ctx context.Context) ([]skills.Category, error)
	}
	ExperienceReader interface {
		List(ctx context.Context) ([]experience.Entry, error)
	}
	ProjectsReader interface {
		List(ctx context.Context) ([]projects.Project, error)
	}
	EducationReader interface {
		ListRecent(ctx context.Context) ([]education.Entry, error)
	}
)

// Aggregator captures the current portfolio content as an immutable
// snapshot. A missing profile degrades to the placeholder; missing
// collections become empty slices.
type Aggregator struct {
	Profile    ProfileReader
	Skills     SkillsReader
	Experience ExperienceReader
	Projects   ProjectsReader
	Education  EducationReader
}

func (a *Aggregator) Snapshot(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot

	p, err := a.Profile.Get(ctx)
	switch {
	case err == nil:
		snap.Profile = toModelProfile(p)
	case errors.Is(err, profile.ErrNotFound):
		telemetry.Info("generation.profile_missing", map[string]any{})
		snap.Profile = model.DefaultProfile()
	default:
		return model.Snapshot{}, fmt.Errorf("fetch profile: %w", err)
	}

	categories, err := a.Skills.List(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fetch skills: %w", err)
	}
	for _, cat := range categories {
		snap.SkillCategories = append(snap.SkillCategories, model.SkillCategory{
			Name:   cat.Name,
			Skills: cat.Skills,
		})
	}

	entries, err := a.Experience.List(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fetch experience: %w", err)
	}
	for _, e := range entries {
		snap.Experiences = append(snap.Experiences, model.Experience{
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
			Skills:      e.Skills,
		})
	}

	projectList, err := a.Projects.List(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fetch projects: %w", err)
	}
	for _, p := range projectList {
		snap.Projects = append(snap.Projects, model.Project{
			Title:        p.Title,
			Description:  p.Description,
			Outcomes:     p.Outcomes,
			Technologies: p.Technologies,
			GitHubURL:    p.GitHubURL,
			LiveURL:      p.LiveURL,
		})
	}

	educationList, err := a.Education.ListRecent(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fetch education: %w", err)
	}
	for _, e := range educationList {
		snap.Education = append(snap.Education, model.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
			Details:     e.Details,
		})
	}

	return snap, nil
}

func toModelProfile(p profile.Profile) model.Profile {
	out := model.Profile{
		Name:     p.Name,
		Title:    p.Title,
		Summary:  p.Summary,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
	}
	for _, link := range []struct{ platform, url string }{
		{"linkedin", p.Social.LinkedIn},
		{"github", p.Social.GitHub},
		{"twitter", p.Social.Twitter},
		{"website", p.Social.Website},
	} {
		if link.url != "" {
			out.Social = append(out.Social, model.SocialLink{Platform: link.platform, URL: link.url})
		}
	}
	return out
}
