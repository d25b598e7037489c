package utils

import (
	"testing"
	"time"

	"slotgrid/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("provider-123", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("failed to extract subject: %v", err)
	}
	if id != "provider-123" {
		t.Fatalf("expected provider-123, got %q", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("provider-123", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b || a == "" {
		t.Fatalf("hash must be deterministic, got %q vs %q", a, b)
	}
	if HashToken("abd") == a {
		t.Fatal("different tokens must hash differently")
	}
}
