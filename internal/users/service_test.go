package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "Jordan@Example.com", "Jordan", "correct horse battery")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "jordan@example.com" {
		t.Errorf("email not normalized: %s", u.Email)
	}
	if u.Role != RoleUser {
		t.Errorf("role = %s", u.Role)
	}
	if u.PasswordHash == "" || u.PasswordHash == "correct horse battery" {
		t.Error("password must be stored hashed")
	}

	got, err := svc.Login(ctx, "jordan@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("login returned wrong user")
	}

	if _, err := svc.Login(ctx, "jordan@example.com", "wrong password"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("bad password: err = %v, want ErrBadCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "whatever1"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email: err = %v, want ErrBadCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bad-email", "N", "longenough"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad email: err = %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.com", "", "longenough"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing name: err = %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.com", "N", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short password: err = %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "First", "longenough"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.com", "Second", "longenough"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate: err = %v, want ErrAlreadyExists", err)
	}
}

func TestUpsertGooglePreservesRoleAndPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@b.com", "Jordan", "longenough")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u.Role = RoleAdmin
	if err := svc.Repo.Update(ctx, u); err != nil {
		t.Fatalf("promote: %v", err)
	}

	got, err := svc.UpsertGoogle(ctx, "a@b.com", "Jordan A", "https://pic.example/p.jpg")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got.Role != RoleAdmin {
		t.Errorf("role = %s, google sign-in must not demote", got.Role)
	}
	if got.PasswordHash == "" {
		t.Error("password hash must survive google sign-in")
	}
	if got.Name != "Jordan A" || got.PictureURL == "" {
		t.Errorf("profile fields not refreshed: %+v", got)
	}

	fresh, err := svc.UpsertGoogle(ctx, "new@b.com", "New Person", "")
	if err != nil {
		t.Fatalf("upsert new: %v", err)
	}
	if fresh.Role != RoleUser || fresh.PasswordHash != "" {
		t.Errorf("fresh google user: %+v", fresh)
	}
}
