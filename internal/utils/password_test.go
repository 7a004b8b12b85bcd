package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == "pw123" {
		t.Fatalf("hash must be a non-empty digest, got %q", hash)
	}
	if !VerifyPassword(hash, "pw123") {
		t.Fatalf("correct password must verify")
	}
	if VerifyPassword(hash, "pw124") {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
}
