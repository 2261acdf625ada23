package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	iss, err := NewIssuer("secret", "dev")
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	token, issued, err := iss.Sign(PurposeSession, "user-1", "a@b.co", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := iss.Verify(token, PurposeSession)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "a@b.co" || claims.ID != issued.ID {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestVerifyRejectsWrongPurpose(t *testing.T) {
	iss, _ := NewIssuer("secret", "dev")
	token, _, err := iss.Sign(PurposeMagicLink, "", "a@b.co", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := iss.Verify(token, PurposeSession); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss, _ := NewIssuer("secret", "dev")
	base := time.Now()
	iss.now = func() time.Time { return base }
	token, _, err := iss.Sign(PurposeSession, "user-1", "", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	iss.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := iss.Verify(token, PurposeSession); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to fail, got %v", err)
	}
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	a, _ := NewIssuer("secret-a", "dev")
	b, _ := NewIssuer("secret-b", "dev")
	token, _, _ := a.Sign(PurposeSession, "user-1", "", time.Hour)
	if _, err := b.Verify(token, PurposeSession); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected signature failure, got %v", err)
	}
}

func TestNewIssuerRequiresSecretInProduction(t *testing.T) {
	if _, err := NewIssuer("", "production"); err == nil {
		t.Fatalf("expected error without secret in production")
	}
	if _, err := NewIssuer("", "dev"); err != nil {
		t.Fatalf("dev should fall back to a default secret: %v", err)
	}
}
