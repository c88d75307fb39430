package generations_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/james-eo/portfolio/internal/education"
	"github.com/james-eo/portfolio/internal/experience"
	"github.com/james-eo/portfolio/internal/generations"
	"github.com/james-eo/portfolio/internal/profile"
	"github.com/james-eo/portfolio/internal/projects"
	"github.com/james-eo/portfolio/internal/resumetemplates"
	"github.com/james-eo/portfolio/internal/shared/metrics"
	"github.com/james-eo/portfolio/internal/shared/principal"
	"github.com/james-eo/portfolio/internal/shared/storage/object/local"
	"github.com/james-eo/portfolio/internal/skills"
	"github.com/james-eo/portfolio/resume/model"
)

type fakeRenderer struct {
	err error
}

func (f fakeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake pdf"), nil
}

type fixture struct {
	svc       *generations.Service
	repo      *generations.MemoryRepo
	templates *resumetemplates.Service
	tmplID    string
}

func newFixture(t *testing.T, renderErr error) fixture {
	t.Helper()
	ctx := context.Background()

	tmplRepo := resumetemplates.NewMemoryRepo()
	templates := resumetemplates.NewService(tmplRepo)
	tmpl, err := templates.Create(ctx, resumetemplates.Template{
		Name:        "clean",
		DisplayName: "Clean",
		Category:    resumetemplates.CategoryProfessional,
	}, "admin-1")
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	genRepo := generations.NewMemoryRepo()
	svc := &generations.Service{
		Repo:      genRepo,
		Templates: templates,
		Aggregator: &generations.Aggregator{
			Profile:    profile.NewService(profile.NewMemoryRepo()),
			Skills:     skills.NewService(skills.NewMemoryRepo()),
			Experience: experience.NewService(experience.NewMemoryRepo()),
			Projects:   projects.NewService(projects.NewMemoryRepo()),
			Education:  education.NewMemoryRepo(),
		},
		Renderer: fakeRenderer{err: renderErr},
		Store:    local.New(t.TempDir()),
		Metrics:  metrics.Default(),
		TTL:      time.Hour,
	}
	return fixture{svc: svc, repo: genRepo, templates: templates, tmplID: tmpl.ID}
}

func customizations() model.Customizations {
	return model.Customizations{}
}

func TestGenerateRequiresTemplateID(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.Generate(context.Background(), principal.Session("s-1"), "", customizations())
	if !errors.Is(err, generations.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateRejectsUnknownCustomizations(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	p := principal.Session("s-1")

	cases := []model.Customizations{
		{ColorScheme: "purple"},
		{Typography: "comic-sans"},
		{SectionOrder: []string{"pets"}},
	}
	for _, cust := range cases {
		if _, err := f.svc.Generate(ctx, p, f.tmplID, cust); !errors.Is(err, generations.ErrInvalidInput) {
			t.Errorf("%+v: err = %v, want ErrInvalidInput", cust, err)
		}
	}

	items, err := f.svc.List(ctx, p)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("bad customizations must not leave records, got %d", len(items))
	}
}

func TestGenerateHappyPath(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	p := principal.Session("s-1")

	g, err := f.svc.Generate(ctx, p, f.tmplID, customizations())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if g.Status != generations.StatusGenerated {
		t.Errorf("status = %s, want generated", g.Status)
	}
	if g.FileKey == "" || g.FileSize == 0 {
		t.Errorf("file not recorded: key=%q size=%d", g.FileKey, g.FileSize)
	}
	if g.GeneratedAt == nil {
		t.Error("generatedAt not set")
	}
	if !g.ExpiresAt.After(g.CreatedAt) {
		t.Error("expiresAt must be after creation")
	}

	got, rc, err := f.svc.Open(ctx, g.ID, true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 || int64(len(data)) != got.FileSize {
		t.Errorf("stream size %d does not match record %d", len(data), got.FileSize)
	}

	after, err := f.repo.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.DownloadedAt == nil {
		t.Error("download must set downloadedAt")
	}

	tmpl, err := f.templates.Get(ctx, f.tmplID, principal.User("admin-1", principal.RoleAdmin))
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if tmpl.DownloadCount != 1 {
		t.Errorf("download count = %d, want 1", tmpl.DownloadCount)
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	p := principal.Session("s-1")

	_, err := f.svc.Generate(ctx, p, "no-such-id", customizations())
	if !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	items, err := f.svc.List(ctx, p)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("no record should exist before the template resolves, got %d", len(items))
	}
}

func TestGenerateInactiveTemplate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if err := f.templates.Deactivate(ctx, f.tmplID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	_, err := f.svc.Generate(ctx, principal.Session("s-1"), f.tmplID, customizations())
	if !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGenerateRenderFailure(t *testing.T) {
	f := newFixture(t, errors.New("chrome exploded"))
	ctx := context.Background()
	p := principal.Session("s-1")

	_, err := f.svc.Generate(ctx, p, f.tmplID, customizations())
	if !errors.Is(err, generations.ErrRenderFailed) {
		t.Fatalf("err = %v, want ErrRenderFailed", err)
	}

	items, err := f.svc.List(ctx, p)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("a failed record must remain, got %d", len(items))
	}
	g, err := f.repo.GetByID(ctx, items[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.Status != generations.StatusFailed {
		t.Errorf("status = %s, want failed", g.Status)
	}
	if g.ErrorMessage == "" {
		t.Error("error message must be captured on the record")
	}
}

func TestOpenNotReady(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	pending := generations.Generation{
		ID:        "pend-1",
		SessionID: "s-1",
		Status:    generations.StatusPending,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	if err := f.repo.Create(ctx, pending); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, _, err := f.svc.Open(ctx, "pend-1", true)
	if !errors.Is(err, generations.ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
	g, _ := f.repo.GetByID(ctx, "pend-1")
	if g.DownloadedAt != nil {
		t.Error("refused download must not mark downloadedAt")
	}
}

func TestOpenExpired(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	g, err := f.svc.Generate(ctx, principal.Session("s-1"), f.tmplID, customizations())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	stored, _ := f.repo.GetByID(ctx, g.ID)
	stored.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	if err := f.repo.Create(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, _, err = f.svc.Open(ctx, g.ID, true)
	if !errors.Is(err, generations.ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
}

func TestDeleteOwnership(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := principal.Session("s-1")

	g, err := f.svc.Generate(ctx, owner, f.tmplID, customizations())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := f.svc.Delete(ctx, principal.Session("s-other"), g.ID); !errors.Is(err, generations.ErrForbidden) {
		t.Fatalf("stranger delete: err = %v, want ErrForbidden", err)
	}
	if err := f.svc.Delete(ctx, owner, g.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := f.repo.GetByID(ctx, g.ID); !errors.Is(err, generations.ErrNotFound) {
		t.Errorf("record should be gone, got %v", err)
	}
}

func TestSweeperRemovesExpired(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	g, err := f.svc.Generate(ctx, principal.Session("s-1"), f.tmplID, customizations())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	stored, _ := f.repo.GetByID(ctx, g.ID)
	stored.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	if err := f.repo.Create(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	sweeper := &generations.Sweeper{
		Repo:    f.repo,
		Store:   f.svc.Store,
		Metrics: metrics.Default(),
	}
	n, err := sweeper.SweepOnce(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d, want 1", n)
	}
	if _, err := f.repo.GetByID(ctx, g.ID); !errors.Is(err, generations.ErrNotFound) {
		t.Errorf("record should be gone, got %v", err)
	}
	if _, err := f.svc.Store.Open(ctx, stored.FileKey); err == nil {
		t.Error("stored file should be gone")
	}
}
