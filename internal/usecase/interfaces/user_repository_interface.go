package interfaces

import (
	"context"

	"bahia_gestao/internal/domain/entities"
)

// IUserRepository is backed by the relational auth database (GORM).
// Lookups return a zero UserAccount when nothing matches.
type IUserRepository interface {
	Create(ctx context.Context, a entities.UserAccount) (entities.UserAccount, error)
	GetByID(ctx context.Context, id string) (entities.UserAccount, error)
	GetByEmail(ctx context.Context, email string) (entities.UserAccount, error)
	List(ctx context.Context) ([]entities.UserProfile, error)
	UpdateProfile(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
	UpdateSettings(ctx context.Context, userID string, s entities.UserSettings) (entities.UserSettings, error)
	Delete(ctx context.Context, id string) error
}
