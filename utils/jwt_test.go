package utils

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "maria")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "maria" {
		t.Errorf("Username = %q, want %q", claims.Username, "maria")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "-1h")

	token, err := GenerateToken(7, "adrian")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken(7, "adrian")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for token signed with another secret, got nil")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(7, "adrian")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected error for tampered token, got nil")
	}
}
