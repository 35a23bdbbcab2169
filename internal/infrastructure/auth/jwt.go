// Package auth signs and verifies the session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the token body. The subject is the user id and the jti is what
// logout denylists.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer issues HS256 tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration, issuer string) *JWTIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

func (j *JWTIssuer) Issue(profile entities.UserProfile) (string, interfaces.TokenClaims, error) {
	now := j.now()
	exp := now.Add(j.ttl)
	claims := &Claims{
		Role: profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   profile.ID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", interfaces.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, toTokenClaims(claims), nil
}

func (j *JWTIssuer) Parse(token string) (interfaces.TokenClaims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return interfaces.TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	return toTokenClaims(claims), nil
}

func toTokenClaims(c *Claims) interfaces.TokenClaims {
	out := interfaces.TokenClaims{UserID: c.Subject, Role: c.Role, TokenID: c.ID}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time.UTC()
	}
	return out
}
