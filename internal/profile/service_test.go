package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func validProfile() Profile {
	return Profile{
		Name:    "Jordan Avery",
		Title:   "Senior Software Engineer",
		Summary: "Backend engineer.",
	}
}

func TestCreateSingleton(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validProfile()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, validProfile()); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second create: err = %v, want ErrAlreadyExists", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		p    Profile
	}{
		{"missing name", Profile{Title: "T", Summary: "S"}},
		{"missing title", Profile{Name: "N", Summary: "S"}},
		{"missing summary", Profile{Name: "N", Title: "T"}},
		{"summary too long", Profile{Name: "N", Title: "T", Summary: strings.Repeat("x", maxSummaryLen+1)}},
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, c.p); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", c.name, err)
		}
	}
}

func TestPutUpserts(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.Put(ctx, validProfile())
	if err != nil {
		t.Fatalf("first put: %v", err)
	}

	update := validProfile()
	update.Title = "Staff Engineer"
	second, err := svc.Put(ctx, update)
	if err != nil {
		t.Fatalf("second put: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("put must keep the profile identity: %s vs %s", second.ID, first.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("put must preserve createdAt")
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Staff Engineer" {
		t.Errorf("title = %s", got.Title)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validProfile()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}
}
