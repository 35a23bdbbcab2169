package response

import (
	"time"

	"bahia_gestao/internal/domain/entities"
)

type LoginResponse struct {
	Token     string               `json:"token"`
	TokenType string               `json:"token_type"`
	ExpiresAt time.Time            `json:"expires_at"`
	Profile   entities.UserProfile `json:"profile"`
}

func FromSession(s entities.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		Profile:   s.Profile,
	}
}
