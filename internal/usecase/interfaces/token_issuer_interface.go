package interfaces

import (
	"time"

	"bahia_gestao/internal/domain/entities"
)

type TokenClaims struct {
	UserID    string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// ITokenIssuer signs and verifies session tokens.
type ITokenIssuer interface {
	Issue(profile entities.UserProfile) (token string, claims TokenClaims, err error)
	Parse(token string) (TokenClaims, error)
}
