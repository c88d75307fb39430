package resumetemplates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/james-eo/portfolio/internal/shared/principal"
)

func newTestService(t *testing.T) (*Service, Template) {
	t.Helper()
	svc := NewService(NewMemoryRepo())
	tmpl, err := svc.Create(context.Background(), Template{
		Name:        "clean",
		DisplayName: "Clean",
		Category:    CategoryProfessional,
	}, "admin-1")
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	return svc, tmpl
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		t    Template
	}{
		{"missing name", Template{DisplayName: "X", Category: CategoryModern}},
		{"name with spaces", Template{Name: "two words", DisplayName: "X", Category: CategoryModern}},
		{"missing display name", Template{Name: "ok", Category: CategoryModern}},
		{"bad category", Template{Name: "ok", DisplayName: "X", Category: "fancy"}},
		{"bad color scheme", Template{Name: "ok", DisplayName: "X", Category: CategoryModern,
			Data: TemplateData{ColorScheme: "purple"}}},
		{"bad typography", Template{Name: "ok", DisplayName: "X", Category: CategoryModern,
			Data: TemplateData{Typography: Typography{FontFamily: "comic-sans"}}}},
		{"bad section order", Template{Name: "ok", DisplayName: "X", Category: CategoryModern,
			Data: TemplateData{SectionOrder: []string{"summary", "pets"}}}},
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, c.t, ""); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", c.name, err)
		}
	}

	// Known layout values pass.
	if _, err := svc.Create(ctx, Template{
		Name: "ok", DisplayName: "X", Category: CategoryModern,
		Data: TemplateData{
			ColorScheme:  "navy",
			Typography:   Typography{FontFamily: "serif"},
			SectionOrder: []string{"skills", "summary"},
		},
	}, ""); err != nil {
		t.Errorf("valid layout data rejected: %v", err)
	}
}

func TestCreateLowercasesName(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	tmpl, err := svc.Create(context.Background(), Template{
		Name:        "MixedCase",
		DisplayName: "Mixed",
		Category:    CategoryModern,
	}, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tmpl.Name != "mixedcase" {
		t.Errorf("name = %q, want lowercased", tmpl.Name)
	}
}

func TestDefaultIsExclusivePerCategory(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	admin := principal.User("admin-1", principal.RoleAdmin)

	first, err := svc.Create(ctx, Template{
		Name: "first", DisplayName: "First", Category: CategoryModern, IsDefault: true,
	}, "")
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(ctx, Template{
		Name: "second", DisplayName: "Second", Category: CategoryModern, IsDefault: true,
	}, "")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	got, err := svc.Get(ctx, first.ID, admin)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if got.IsDefault {
		t.Error("first template should have lost its default flag")
	}
	got, err = svc.Get(ctx, second.ID, admin)
	if err != nil {
		t.Fatalf("get second: %v", err)
	}
	if !got.IsDefault {
		t.Error("second template should be the category default")
	}
}

func TestDeactivateHidesFromPublic(t *testing.T) {
	svc, tmpl := newTestService(t)
	ctx := context.Background()
	anon := principal.Session("s-1")
	admin := principal.User("admin-1", principal.RoleAdmin)

	if err := svc.Deactivate(ctx, tmpl.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Get(ctx, tmpl.ID, anon); !errors.Is(err, ErrForbidden) {
		t.Errorf("public get: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Get(ctx, tmpl.ID, admin); err != nil {
		t.Errorf("admin get: %v", err)
	}
	if _, err := svc.GetActive(ctx, tmpl.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get active: err = %v, want ErrNotFound", err)
	}

	items, total, err := svc.List(ctx, Filter{IncludeInactive: true}, anon)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Errorf("public list must not see inactive templates, got %d", total)
	}
	_, total, err = svc.List(ctx, Filter{IncludeInactive: true}, admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if total != 1 {
		t.Errorf("admin list should see inactive templates, got %d", total)
	}
}

func TestRateUpsert(t *testing.T) {
	svc, tmpl := newTestService(t)
	ctx := context.Background()
	rater := principal.Session("s-1")

	if _, err := svc.Rate(ctx, tmpl.ID, rater, 0, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("score 0: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Rate(ctx, tmpl.ID, rater, 6, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("score 6: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Rate(ctx, tmpl.ID, rater, 4, strings.Repeat("x", maxReviewLen+1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("long review: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Rate(ctx, tmpl.ID, principal.Principal{}, 4, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("no identity: err = %v, want ErrInvalidInput", err)
	}

	got, err := svc.Rate(ctx, tmpl.ID, rater, 5, "great layout")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got.RatingAverage != 5 || got.RatingCount != 1 {
		t.Errorf("after first rating: avg=%v count=%d", got.RatingAverage, got.RatingCount)
	}

	// Same principal rates again: overwrite, not a second row.
	got, err = svc.Rate(ctx, tmpl.ID, rater, 3, "")
	if err != nil {
		t.Fatalf("re-rate: %v", err)
	}
	if got.RatingAverage != 3 || got.RatingCount != 1 {
		t.Errorf("after re-rating: avg=%v count=%d, want 3/1", got.RatingAverage, got.RatingCount)
	}

	got, err = svc.Rate(ctx, tmpl.ID, principal.Session("s-2"), 4, "")
	if err != nil {
		t.Fatalf("second rater: %v", err)
	}
	if got.RatingAverage != 3.5 || got.RatingCount != 2 {
		t.Errorf("after second rater: avg=%v count=%d, want 3.5/2", got.RatingAverage, got.RatingCount)
	}
}

func TestRatingStatsExcludeReported(t *testing.T) {
	svc, tmpl := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Rate(ctx, tmpl.ID, principal.Session("s-1"), 5, "spam"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	repo := svc.Repo.(*MemoryRepo)
	repo.mu.Lock()
	for id, rating := range repo.ratings {
		rating.Reported = true
		repo.ratings[id] = rating
	}
	repo.mu.Unlock()

	// The next recompute must ignore the reported row.
	got, err := svc.Rate(ctx, tmpl.ID, principal.Session("s-2"), 3, "")
	if err != nil {
		t.Fatalf("second rater: %v", err)
	}
	if got.RatingAverage != 3 || got.RatingCount != 1 {
		t.Errorf("aggregate includes reported ratings: avg=%v count=%d, want 3/1", got.RatingAverage, got.RatingCount)
	}
	visible, total, err := svc.Ratings(ctx, tmpl.ID, 10, 0)
	if err != nil {
		t.Fatalf("ratings: %v", err)
	}
	if total != 1 || len(visible) != 1 {
		t.Errorf("listed %d ratings, want 1", total)
	}
}

func TestRateInactiveTemplate(t *testing.T) {
	svc, tmpl := newTestService(t)
	ctx := context.Background()
	if err := svc.Deactivate(ctx, tmpl.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Rate(ctx, tmpl.ID, principal.Session("s-1"), 4, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateKeepsName(t *testing.T) {
	svc, tmpl := newTestService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, tmpl.ID, Template{
		Name:        "renamed",
		DisplayName: "Renamed",
		Category:    CategoryModern,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "clean" {
		t.Errorf("name = %q, names are immutable", updated.Name)
	}
	if updated.Category != CategoryModern || updated.DisplayName != "Renamed" {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := SeedDefaults(ctx, repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedDefaults(ctx, repo); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	items, total, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != len(BuiltinCategories) || len(items) != len(BuiltinCategories) {
		t.Errorf("seeded %d templates, want %d", total, len(BuiltinCategories))
	}
	for _, tmpl := range items {
		if !tmpl.IsDefault {
			t.Errorf("seeded template %s should be its category default", tmpl.Name)
		}
	}
}
