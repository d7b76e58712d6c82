package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

func parseClaims(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	return claims
}

func TestTokenService_IssueRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.IdentityClaims{
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  "standard",
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := parseClaims(t, token, "secret")
	if claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["name"] != "Alice" {
		t.Fatalf("unexpected name claim: %v", claims["name"])
	}
	if claims["role"] != "standard" {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
}

func TestTokenService_ExpiryIsOneHour(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(ports.IdentityClaims{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	// Do not validate here: the fixed issue time is in the past.
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing: %v", claims["exp"])
	}
	if int64(exp) != issuedAt.Add(time.Hour).Unix() {
		t.Fatalf("expected exp %d, got %d", issuedAt.Add(time.Hour).Unix(), int64(exp))
	}
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(ports.IdentityClaims{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = jwt.ParseWithClaims(token, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestTokenService_OmitsEmptyOptionalClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.IdentityClaims{Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := parseClaims(t, token, "secret")
	if _, ok := claims["role"]; ok {
		t.Fatalf("role claim should be absent, got %v", claims["role"])
	}
	if _, ok := claims["name"]; ok {
		t.Fatalf("name claim should be absent, got %v", claims["name"])
	}
}
