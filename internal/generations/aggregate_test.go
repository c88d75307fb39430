package generations_test

import (
	"context"
	"testing"

	"github.com/james-eo/portfolio/internal/education"
	"github.com/james-eo/portfolio/internal/experience"
	"github.com/james-eo/portfolio/internal/generations"
	"github.com/james-eo/portfolio/internal/profile"
	"github.com/james-eo/portfolio/internal/projects"
	"github.com/james-eo/portfolio/internal/skills"
)

func TestSnapshotMissingProfile(t *testing.T) {
	f := newFixture(t, nil)

	snap, err := f.svc.Aggregator.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Profile.Name != "Your Name" || snap.Profile.Title != "Professional Title" {
		t.Errorf("missing profile should fall back to placeholder, got %+v", snap.Profile)
	}
	if len(snap.SkillCategories) != 0 || len(snap.Experiences) != 0 {
		t.Errorf("empty content should yield empty sections")
	}
}

func TestSnapshotCollectsContent(t *testing.T) {
	ctx := context.Background()

	profileSvc := profile.NewService(profile.NewMemoryRepo())
	if _, err := profileSvc.Create(ctx, profile.Profile{
		Name:    "Jordan Avery",
		Title:   "Engineer",
		Summary: "Builds things.",
		Email:   "jordan@example.com",
		Social: profile.SocialLinks{
			GitHub:   "https://github.com/javery",
			LinkedIn: "https://linkedin.com/in/javery",
		},
	}); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	skillsSvc := skills.NewService(skills.NewMemoryRepo())
	if _, err := skillsSvc.Create(ctx, skills.Category{Name: "Languages", Skills: []string{"Go"}}); err != nil {
		t.Fatalf("create skills: %v", err)
	}

	experienceSvc := experience.NewService(experience.NewMemoryRepo())
	if _, err := experienceSvc.Create(ctx, experience.Entry{
		Title: "Engineer", Company: "Northwind", StartDate: "2021", Current: true,
	}); err != nil {
		t.Fatalf("create experience: %v", err)
	}

	eduRepo := education.NewMemoryRepo()

	agg := &generations.Aggregator{
		Profile:    profileSvc,
		Skills:     skillsSvc,
		Experience: experienceSvc,
		Projects:   projects.NewService(projects.NewMemoryRepo()),
		Education:  eduRepo,
	}

	snap, err := agg.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Profile.Name != "Jordan Avery" {
		t.Errorf("profile name = %s", snap.Profile.Name)
	}
	if len(snap.Profile.Social) != 2 {
		t.Errorf("social links = %d, want 2 flattened entries", len(snap.Profile.Social))
	}
	if len(snap.SkillCategories) != 1 || snap.SkillCategories[0].Name != "Languages" {
		t.Errorf("skills = %+v", snap.SkillCategories)
	}
	if len(snap.Experiences) != 1 || !snap.Experiences[0].Current {
		t.Errorf("experiences = %+v", snap.Experiences)
	}
}
