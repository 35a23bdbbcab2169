package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserModel is the users table of the auth database.
type UserModel struct {
	ID           string            `gorm:"primaryKey;size:36"`
	Email        string            `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string            `gorm:"not null"`
	Name         string            `gorm:"size:255;not null"`
	Picture      string            `gorm:"type:text"`
	Role         string            `gorm:"size:64;not null"`
	Settings     UserSettingsModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

// UserSettingsModel holds the company data of one user.
type UserSettingsModel struct {
	UserID         string    `gorm:"primaryKey;size:36"`
	FullName       string    `gorm:"size:255"`
	Role           string    `gorm:"size:255"`
	CompanyName    string    `gorm:"size:255"`
	CompanyCNPJ    string    `gorm:"column:company_cnpj;size:32"`
	CompanyAddress string    `gorm:"type:text"`
	CompanyCity    string    `gorm:"size:255"`
	CompanyPhone   string    `gorm:"size:64"`
	CompanyEmail   string    `gorm:"size:255"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UserSettingsModel) TableName() string { return "user_settings" }

// MigrateUserDB creates or updates the auth tables.
func MigrateUserDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &UserSettingsModel{}); err != nil {
		return fmt.Errorf("migrate auth tables: %w", err)
	}
	return nil
}

// UserGormRepository stores user accounts in postgres or mysql.
type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Create inserts the account and its settings row. A duplicate email is
// reported as entities.ErrConflict.
func (r *UserGormRepository) Create(ctx context.Context, a entities.UserAccount) (entities.UserAccount, error) {
	m := toUserModel(a)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.UserAccount{}, fmt.Errorf("%w: email %s", entities.ErrConflict, a.Profile.Email)
		}
		return entities.UserAccount{}, entities.NewPersistenceError("create user", err)
	}
	return fromUserModel(m), nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.UserAccount, error) {
	return r.first(ctx, "get user", "id = ?", id)
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.UserAccount, error) {
	return r.first(ctx, "get user by email", "email = ?", email)
}

func (r *UserGormRepository) first(ctx context.Context, op, query string, arg any) (entities.UserAccount, error) {
	var m UserModel
	err := r.db.WithContext(ctx).Preload("Settings").Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.UserAccount{}, nil
	}
	if err != nil {
		return entities.UserAccount{}, entities.NewPersistenceError(op, err)
	}
	return fromUserModel(m), nil
}

func (r *UserGormRepository) List(ctx context.Context) ([]entities.UserProfile, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, entities.NewPersistenceError("list users", err)
	}
	out := make([]entities.UserProfile, 0, len(models))
	for _, m := range models {
		out = append(out, toUserProfile(m))
	}
	return out, nil
}

// UpdateProfile writes name, picture and role. Unknown ids yield a zero profile.
func (r *UserGormRepository) UpdateProfile(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&UserModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":    p.Name,
		"picture": p.Picture,
		"role":    p.Role,
	})
	if res.Error != nil {
		return entities.UserProfile{}, entities.NewPersistenceError("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.UserProfile{}, nil
	}
	var m UserModel
	if err := db.Where("id = ?", p.ID).First(&m).Error; err != nil {
		return entities.UserProfile{}, entities.NewPersistenceError("update user", err)
	}
	return toUserProfile(m), nil
}

// UpdateSettings upserts the settings row of userID.
func (r *UserGormRepository) UpdateSettings(ctx context.Context, userID string, s entities.UserSettings) (entities.UserSettings, error) {
	m := toSettingsModel(userID, s)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&m).Error
	if err != nil {
		return entities.UserSettings{}, entities.NewPersistenceError("update user settings", err)
	}
	return s, nil
}

func (r *UserGormRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&UserSettingsModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&UserModel{}).Error
	})
	return entities.NewPersistenceError("delete user", err)
}

func toUserModel(a entities.UserAccount) UserModel {
	return UserModel{
		ID:           a.Profile.ID,
		Email:        a.Profile.Email,
		PasswordHash: a.PasswordHash,
		Name:         a.Profile.Name,
		Picture:      a.Profile.Picture,
		Role:         a.Profile.Role,
		Settings:     toSettingsModel(a.Profile.ID, a.Settings),
		CreatedAt:    a.Profile.CreatedAt,
	}
}

func toSettingsModel(userID string, s entities.UserSettings) UserSettingsModel {
	return UserSettingsModel{
		UserID:         userID,
		FullName:       s.FullName,
		Role:           s.Role,
		CompanyName:    s.CompanyName,
		CompanyCNPJ:    s.CompanyCNPJ,
		CompanyAddress: s.CompanyAddress,
		CompanyCity:    s.CompanyCity,
		CompanyPhone:   s.CompanyPhone,
		CompanyEmail:   s.CompanyEmail,
	}
}

func toUserProfile(m UserModel) entities.UserProfile {
	return entities.UserProfile{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Picture:   m.Picture,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func fromUserModel(m UserModel) entities.UserAccount {
	s := m.Settings
	return entities.UserAccount{
		Profile:      toUserProfile(m),
		PasswordHash: m.PasswordHash,
		Settings: entities.UserSettings{
			FullName:       s.FullName,
			Role:           s.Role,
			CompanyName:    s.CompanyName,
			CompanyCNPJ:    s.CompanyCNPJ,
			CompanyAddress: s.CompanyAddress,
			CompanyCity:    s.CompanyCity,
			CompanyPhone:   s.CompanyPhone,
			CompanyEmail:   s.CompanyEmail,
		},
	}
}
