package generations

import (
	"context"
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusGenerated, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusPending, false},
		{StatusPending, StatusExpired, false},
		{StatusGenerated, StatusFailed, false},
		{StatusGenerated, StatusPending, false},
		{StatusFailed, StatusGenerated, false},
		{StatusExpired, StatusGenerated, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Now().UTC()
	g := Generation{Status: StatusGenerated, ExpiresAt: now.Add(time.Hour)}

	if got := g.EffectiveStatus(now); got != StatusGenerated {
		t.Errorf("before expiry: got %s", got)
	}
	if got := g.EffectiveStatus(now.Add(2 * time.Hour)); got != StatusExpired {
		t.Errorf("after expiry: got %s", got)
	}

	g.Status = StatusPending
	if got := g.EffectiveStatus(now.Add(2 * time.Hour)); got != StatusExpired {
		t.Errorf("pending past expiry: got %s", got)
	}
}

func TestDownloadable(t *testing.T) {
	now := time.Now().UTC()

	g := Generation{Status: StatusGenerated, FileKey: "generations/x.pdf", ExpiresAt: now.Add(time.Hour)}
	if !g.Downloadable(now) {
		t.Error("generated with file should be downloadable")
	}
	if g.Downloadable(now.Add(2 * time.Hour)) {
		t.Error("expired record must not be downloadable")
	}

	g.FileKey = ""
	if g.Downloadable(now) {
		t.Error("generated without file key must not be downloadable")
	}

	g = Generation{Status: StatusPending, ExpiresAt: now.Add(time.Hour)}
	if g.Downloadable(now) {
		t.Error("pending must not be downloadable")
	}
}

func TestMemoryRepoTransitions(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	g := Generation{ID: "g1", Status: StatusPending, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.MarkGenerated(ctx, "g1", "generations/g1.pdf", 100, now); err != nil {
		t.Fatalf("pending->generated: %v", err)
	}
	if err := repo.MarkFailed(ctx, "g1", "boom"); err != ErrInvalidTransition {
		t.Errorf("generated->failed: got %v, want ErrInvalidTransition", err)
	}
	if err := repo.MarkGenerated(ctx, "g1", "k", 1, now); err != ErrInvalidTransition {
		t.Errorf("generated->generated: got %v, want ErrInvalidTransition", err)
	}

	if err := repo.MarkGenerated(ctx, "missing", "k", 1, now); err != ErrNotFound {
		t.Errorf("missing record: got %v, want ErrNotFound", err)
	}

	g2 := Generation{ID: "g2", Status: StatusPending, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	if err := repo.Create(ctx, g2); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkFailed(ctx, "g2", "render blew up"); err != nil {
		t.Fatalf("pending->failed: %v", err)
	}
	got, err := repo.GetByID(ctx, "g2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusFailed || got.ErrorMessage != "render blew up" {
		t.Errorf("failed record = %+v", got)
	}
}
