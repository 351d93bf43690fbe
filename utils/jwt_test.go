package utils

import (
	"testing"
	"time"
)

func TestTokenIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("default-secret", "admin-secret", time.Hour)

	token, err := issuer.Issue("user-123", false)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	subject, adminHint, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("got subject %q, want user-123", subject)
	}
	if adminHint {
		t.Fatal("default-secret token must not carry the admin hint")
	}
}

func TestAdminTokenCarriesHint(t *testing.T) {
	issuer := NewTokenIssuer("default-secret", "admin-secret", time.Hour)

	token, err := issuer.Issue("admin-1", true)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	subject, adminHint, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "admin-1" {
		t.Fatalf("got subject %q, want admin-1", subject)
	}
	if !adminHint {
		t.Fatal("admin-secret token must carry the admin hint")
	}
}

func TestAdminSecretFallback(t *testing.T) {
	// With no dedicated admin secret, admin tokens verify against the
	// default secret and lose the hint.
	issuer := NewTokenIssuer("only-secret", "", time.Hour)

	token, err := issuer.Issue("admin-1", true)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	subject, adminHint, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "admin-1" {
		t.Fatalf("got subject %q, want admin-1", subject)
	}
	if adminHint {
		t.Fatal("hint must stay false when the secrets are shared")
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", "admin-a", time.Hour)
	other := NewTokenIssuer("secret-b", "admin-b", time.Hour)

	token, err := other.Issue("user-1", false)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, _, err := issuer.Verify(token); err == nil {
		t.Fatal("token signed with a foreign secret must not verify")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", "", -time.Minute)
	token, err := issuer.Issue("user-1", false)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, _, err := issuer.Verify(token); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatal("hash must be deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatal("distinct tokens must hash differently")
	}
	if got := len(HashToken("abc")); got != 64 {
		t.Fatalf("hex sha256 should be 64 chars, got %d", got)
	}
}
