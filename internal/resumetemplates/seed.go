package resumetemplates

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/james-eo/portfolio/internal/shared/telemetry"
)

var seedTemplates = []Template{
	{
		Name:        "minimal",
		DisplayName: "Minimal",
		Description: "Clean single-column layout with restrained typography.",
		Category:    CategoryMinimal,
		IsDefault:   true,
		Data:        TemplateData{Layout: "single-column", ColorScheme: "black", Typography: Typography{FontFamily: "serif"}},
		Tags:        []string{"clean", "simple"},
	},
	{
		Name:        "modern",
		DisplayName: "Modern",
		Description: "Accent header band with a contemporary sans-serif stack.",
		Category:    CategoryModern,
		IsDefault:   true,
		Data:        TemplateData{Layout: "single-column", ColorScheme: "blue", Typography: Typography{FontFamily: "sans"}},
		Tags:        []string{"contemporary"},
	},
	{
		Name:        "professional",
		DisplayName: "Professional",
		Description: "Conservative layout suited to corporate applications.",
		Category:    CategoryProfessional,
		IsDefault:   true,
		Data:        TemplateData{Layout: "single-column", ColorScheme: "navy", Typography: Typography{FontFamily: "serif"}},
		Tags:        []string{"corporate", "formal"},
	},
	{
		Name:        "creative",
		DisplayName: "Creative",
		Description: "Bolder colors and headings for design-forward roles.",
		Category:    CategoryCreative,
		IsDefault:   true,
		Data:        TemplateData{Layout: "single-column", ColorScheme: "maroon", Typography: Typography{FontFamily: "sans"}},
		Tags:        []string{"bold", "design"},
	},
	{
		Name:        "technical",
		DisplayName: "Technical",
		Description: "Monospace body with emphasis on skills and projects.",
		Category:    CategoryTechnical,
		IsDefault:   true,
		Data: TemplateData{
			Layout: "single-column", ColorScheme: "green",
			Typography:   Typography{FontFamily: "mono"},
			SectionOrder: []string{"summary", "skills", "projects", "experience", "education"},
		},
		Tags: []string{"engineering"},
	},
}

// SeedDefaults inserts the built-in templates that are missing. Safe to
// run on every startup.
func SeedDefaults(ctx context.Context, repo Repo) error {
	for _, t := range seedTemplates {
		if _, err := repo.GetByName(ctx, t.Name); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		now := time.Now().UTC()
		t.ID = uuid.NewString()
		t.IsActive = true
		t.CreatedAt = now
		t.UpdatedAt = now
		if err := repo.Create(ctx, t); err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				continue
			}
			return err
		}
		telemetry.Info("templates.seeded", map[string]any{"name": t.Name})
	}
	return nil
}
