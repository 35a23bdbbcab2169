package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", entities.ErrConflict)
	ErrUserNotFound       = fmt.Errorf("user %w", entities.ErrNotFound)
)

// IAuthUseCase is the authentication boundary: sign-up, login, current user
// and logout.
type IAuthUseCase interface {
	SignUp(ctx context.Context, email, password, name string) (entities.UserProfile, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	CurrentUser(ctx context.Context, userID string) (entities.UserProfile, error)
	Logout(ctx context.Context, claims interfaces.TokenClaims) error
	Authenticate(ctx context.Context, token string) (interfaces.TokenClaims, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	tokens   interfaces.ITokenIssuer
	denylist interfaces.ITokenDenylist
	cost     int
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase; cost is the bcrypt cost, bcrypt.DefaultCost when zero.
func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer, denylist interfaces.ITokenDenylist, cost int) *AuthUseCase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthUseCase{users: users, tokens: tokens, denylist: denylist, cost: cost}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", entities.ValidationError("email", "is invalid")
	}
	return email, nil
}

func (u *AuthUseCase) SignUp(ctx context.Context, email, password, name string) (entities.UserProfile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(password) < minPasswordLength {
		return entities.UserProfile{}, entities.ValidationError("password", fmt.Sprintf("must have at least %d characters", minPasswordLength))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.UserProfile{}, entities.ValidationError("name", "is required")
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.UserProfile{}, logPersistence("auth", "lookup", err)
	}
	if existing.Profile.ID != "" {
		return entities.UserProfile{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return entities.UserProfile{}, err
	}
	account := entities.UserAccount{
		Profile: entities.UserProfile{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     email,
			Role:      entities.RoleUser,
			CreatedAt: clock(),
		},
		PasswordHash: string(hash),
		Settings:     entities.UserSettings{FullName: name, Role: entities.RoleUser},
	}
	created, err := u.users.Create(ctx, account)
	if err != nil {
		if errors.Is(err, entities.ErrConflict) {
			return entities.UserProfile{}, ErrEmailTaken
		}
		return entities.UserProfile{}, logPersistence("auth", "create", err)
	}
	log.Printf("[auth][usecase] signup user_id=%s", created.Profile.ID)
	return created.Profile, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.Session{}, ErrInvalidCredentials
	}
	account, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.Session{}, logPersistence("auth", "lookup", err)
	}
	if account.Profile.ID == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Printf("[auth][usecase] login rejected user_id=%s", account.Profile.ID)
		return entities.Session{}, ErrInvalidCredentials
	}

	token, claims, err := u.tokens.Issue(account.Profile)
	if err != nil {
		return entities.Session{}, err
	}
	return entities.Session{Token: token, ExpiresAt: claims.ExpiresAt, Profile: account.Profile}, nil
}

// CurrentUser returns ErrUnauthenticated when the token's user is gone.
func (u *AuthUseCase) CurrentUser(ctx context.Context, userID string) (entities.UserProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.UserProfile{}, ErrUnauthenticated
	}
	account, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.UserProfile{}, logPersistence("auth", "me", err)
	}
	if account.Profile.ID == "" {
		return entities.UserProfile{}, ErrUnauthenticated
	}
	return account.Profile, nil
}

// Logout denylists the token until it would have expired anyway.
func (u *AuthUseCase) Logout(ctx context.Context, claims interfaces.TokenClaims) error {
	if claims.TokenID == "" {
		return ErrUnauthenticated
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return logPersistence("auth", "logout", u.denylist.Revoke(ctx, claims.TokenID, ttl))
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (interfaces.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.TokenClaims{}, ErrUnauthenticated
	}
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return interfaces.TokenClaims{}, ErrUnauthenticated
	}
	revoked, err := u.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return interfaces.TokenClaims{}, logPersistence("auth", "denylist", err)
	}
	if revoked {
		return interfaces.TokenClaims{}, ErrUnauthenticated
	}
	return claims, nil
}
