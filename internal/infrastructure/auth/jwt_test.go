package auth

import (
	"errors"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func fixedIssuer(now time.Time) *JWTIssuer {
	j := NewJWTIssuer("test-secret", time.Hour, "bahia_gestao")
	j.now = func() time.Time { return now }
	return j
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	j := fixedIssuer(now)

	token, issued, err := j.Issue(entities.UserProfile{ID: "u1", Role: entities.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if issued.TokenID == "" || !issued.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected issued claims: %+v", issued)
	}

	parsed, err := j.Parse(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if parsed.UserID != "u1" || parsed.Role != entities.RoleAdmin || parsed.TokenID != issued.TokenID || !parsed.ExpiresAt.Equal(issued.ExpiresAt) {
		t.Fatalf("expected %+v, got %+v", issued, parsed)
	}
}

func TestJWTIssuer_Rejects(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	j := fixedIssuer(now)
	token, _, err := j.Issue(entities.UserProfile{ID: "u1", Role: entities.RoleUser})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("expired", func(t *testing.T) {
		later := fixedIssuer(now.Add(2 * time.Hour))
		if _, err := later.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token, got %v", err)
		}
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewJWTIssuer("another-secret", time.Hour, "bahia_gestao")
		other.now = j.now
		if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token, got %v", err)
		}
	})

	t.Run("other issuer", func(t *testing.T) {
		other := NewJWTIssuer("test-secret", time.Hour, "someone-else")
		other.now = j.now
		if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token, got %v", err)
		}
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			ID: "x", Subject: "u1", Issuer: "bahia_gestao",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := j.Parse(none); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := j.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token, got %v", err)
		}
	})
}
