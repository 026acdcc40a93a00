package security

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestManager(t *testing.T, now func() time.Time) *TokenManager {
	t.Helper()

	mgr, err := NewTokenManager("test-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager returned error: %v", err)
	}
	if now != nil {
		mgr.WithClock(now)
	}
	return mgr
}

func TestTokenRoundTrip(t *testing.T) {
	mgr := newTestManager(t, nil)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.UserID)
	}
}

func TestTokenRejectsMissingSecret(t *testing.T) {
	if _, err := NewTokenManager("  ", "svc", time.Minute); err == nil {
		t.Fatal("expected construction to fail without a secret")
	}
}

func TestTokenTamperedSignature(t *testing.T) {
	mgr := newTestManager(t, nil)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := mgr.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	mgr := newTestManager(t, nil)

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	other, err := NewTokenManager("rotated-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager returned error: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after secret rotation, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	mgr := newTestManager(t, nil)

	for _, token := range []string{"", "not-a-token", "a.b"} {
		if _, err := mgr.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestTokenExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt
	mgr := newTestManager(t, func() time.Time { return current })

	token, err := mgr.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	current = issuedAt.Add(29*time.Minute + 59*time.Second)
	if _, err := mgr.Verify(token); err != nil {
		t.Fatalf("expected token valid just inside the window, got %v", err)
	}

	current = issuedAt.Add(30*time.Minute + 1*time.Second)
	if _, err := mgr.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired just past the window, got %v", err)
	}
}
