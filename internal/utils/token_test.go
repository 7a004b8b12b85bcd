package utils

import (
	"regexp"
	"testing"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]+$`)

func TestNewVerificationToken(t *testing.T) {
	tok, err := NewVerificationToken()
	if err != nil {
		t.Fatalf("NewVerificationToken: %v", err)
	}
	if len(tok) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(tok))
	}
	if !hexRe.MatchString(tok) {
		t.Fatalf("token must be lowercase hex (URL-safe), got %q", tok)
	}
	other, err := NewVerificationToken()
	if err != nil {
		t.Fatalf("NewVerificationToken: %v", err)
	}
	if tok == other {
		t.Fatalf("two tokens must not collide")
	}
}

func TestNewSessionID(t *testing.T) {
	sid, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID: %v", err)
	}
	if len(sid) != 48 || !hexRe.MatchString(sid) {
		t.Fatalf("want 48 hex chars, got %q", sid)
	}
}
