package auth

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("matching password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("non-matching password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	token, err := issuer.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	subject, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "user@example.com" {
		t.Errorf("subject = %q", subject)
	}
}

func TestTokenExpiry(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret", time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return base }

	token, err := issuer.Issue("user@example.com")
	if err != nil {
		t.Fatal(err)
	}

	issuer.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := issuer.Verify(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer, _ := NewTokenIssuer("secret-a", time.Hour)
	other, _ := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestEmptySecretRejected(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); err == nil {
		t.Error("empty secret accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
