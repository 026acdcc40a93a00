package security

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := VerifyPassword("password123", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify against its own hash")
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	ok, err := VerifyPassword("not-the-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatching password to fail verification")
	}
}

func TestVerifyPasswordEmptyInputs(t *testing.T) {
	if ok, err := VerifyPassword("", "some-hash"); err != nil || ok {
		t.Fatalf("empty password: got ok=%v err=%v", ok, err)
	}
	if ok, err := VerifyPassword("password", ""); err != nil || ok {
		t.Fatalf("empty hash: got ok=%v err=%v", ok, err)
	}
}

func TestConfigureHashCostBounds(t *testing.T) {
	if err := ConfigureHashCost(4); err != nil {
		t.Fatalf("minimum cost rejected: %v", err)
	}
	t.Cleanup(func() {
		if err := ConfigureHashCost(DefaultHashCost); err != nil {
			t.Fatalf("restore cost: %v", err)
		}
	})

	if err := ConfigureHashCost(99); err == nil {
		t.Fatal("expected out-of-range cost to be rejected")
	}
}
