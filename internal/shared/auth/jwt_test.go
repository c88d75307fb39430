package auth

import (
	"strings"
	"testing"
)

func TestSignAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("u1", "admin@example.com", "Admin", "admin")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a three-segment JWT, got %q", token)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Subject != "u1" {
		t.Fatalf("expected subject u1, got %s", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %s", claims.Role)
	}
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("u1", "", "", "user")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := VerifyToken(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := SignToken("u1", "", "", "user")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := VerifyToken(token); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}
