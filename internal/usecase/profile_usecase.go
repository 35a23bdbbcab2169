package usecase

import (
	"context"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
)

// IProfileUseCase manages user profiles (admin only) and the per-user
// company settings printed on quotes.
type IProfileUseCase interface {
	List(ctx context.Context) ([]entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	Update(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
	Delete(ctx context.Context, id string) error
	GetSettings(ctx context.Context, userID string) (entities.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, s entities.UserSettings) (entities.UserSettings, error)
}

type ProfileUseCase struct {
	users interfaces.IUserRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(users interfaces.IUserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

func (u *ProfileUseCase) List(ctx context.Context) ([]entities.UserProfile, error) {
	profiles, err := u.users.List(ctx)
	return profiles, logPersistence("profile", "list", err)
}

func (u *ProfileUseCase) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	account, err := u.account(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	return account.Profile, nil
}

func (u *ProfileUseCase) account(ctx context.Context, id string) (entities.UserAccount, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.UserAccount{}, err
	}
	account, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.UserAccount{}, logPersistence("profile", "get", err)
	}
	if account.Profile.ID == "" {
		return entities.UserAccount{}, ErrUserNotFound
	}
	return account, nil
}

// Update changes name, picture and role. Email is fixed at sign-up.
func (u *ProfileUseCase) Update(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	current, err := u.account(ctx, p.ID)
	if err != nil {
		return entities.UserProfile{}, err
	}
	next := current.Profile
	if name := strings.TrimSpace(p.Name); name != "" {
		next.Name = name
	}
	if role := strings.TrimSpace(p.Role); role != "" {
		next.Role = role
	}
	next.Picture = p.Picture

	updated, err := u.users.UpdateProfile(ctx, next)
	if err != nil {
		return entities.UserProfile{}, logPersistence("profile", "update", err)
	}
	if updated.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *ProfileUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("profile", "delete", u.users.Delete(ctx, id))
}

func (u *ProfileUseCase) GetSettings(ctx context.Context, userID string) (entities.UserSettings, error) {
	account, err := u.account(ctx, userID)
	if err != nil {
		return entities.UserSettings{}, err
	}
	return account.Settings, nil
}

func (u *ProfileUseCase) UpdateSettings(ctx context.Context, userID string, s entities.UserSettings) (entities.UserSettings, error) {
	if _, err := u.account(ctx, userID); err != nil {
		return entities.UserSettings{}, err
	}
	updated, err := u.users.UpdateSettings(ctx, userID, s)
	return updated, logPersistence("profile", "update settings", err)
}
