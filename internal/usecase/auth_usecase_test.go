package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
	mock_interfaces "bahia_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("creates regular user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, bcrypt.MinCost)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@bahia.com").Return(entities.UserAccount{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.UserAccount{})).DoAndReturn(
			func(_ context.Context, a entities.UserAccount) (entities.UserAccount, error) {
				if a.Profile.Role != entities.RoleUser || a.Profile.ID == "" {
					t.Fatalf("unexpected profile: %+v", a.Profile)
				}
				if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("segredo1")) != nil {
					t.Fatalf("password must be stored hashed")
				}
				return a, nil
			},
		)

		p, err := uc.SignUp(context.Background(), " Ana@Bahia.com ", "segredo1", "Ana")
		if err != nil || p.Email != "ana@bahia.com" {
			t.Fatalf("unexpected result err=%v p=%+v", err, p)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, bcrypt.MinCost)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@bahia.com").Return(entities.UserAccount{Profile: entities.UserProfile{ID: "u-1"}}, nil)

		_, err := uc.SignUp(context.Background(), "ana@bahia.com", "segredo1", "Ana")
		if !errors.Is(err, ErrEmailTaken) || !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, bcrypt.MinCost)
		if _, err := uc.SignUp(context.Background(), "not-an-email", "segredo1", "Ana"); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected email validation, got %v", err)
		}
		if _, err := uc.SignUp(context.Background(), "ana@bahia.com", "123", "Ana"); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected password validation, got %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	account := entities.UserAccount{Profile: entities.UserProfile{ID: "u-1", Email: "ana@bahia.com", Role: entities.RoleAdmin}}

	t.Run("issues session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(users, tokens, nil, bcrypt.MinCost)

		acc := account
		acc.PasswordHash = hashed(t, "segredo1")
		exp := time.Now().Add(time.Hour)
		users.EXPECT().GetByEmail(gomock.Any(), "ana@bahia.com").Return(acc, nil)
		tokens.EXPECT().Issue(acc.Profile).Return("tok", interfaces.TokenClaims{UserID: "u-1", TokenID: "j-1", ExpiresAt: exp}, nil)

		s, err := uc.Login(context.Background(), "ana@bahia.com", "segredo1")
		if err != nil || s.Token != "tok" || !s.ExpiresAt.Equal(exp) || s.Profile.ID != "u-1" {
			t.Fatalf("unexpected result err=%v s=%+v", err, s)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, bcrypt.MinCost)

		acc := account
		acc.PasswordHash = hashed(t, "segredo1")
		users.EXPECT().GetByEmail(gomock.Any(), "ana@bahia.com").Return(acc, nil)

		if _, err := uc.Login(context.Background(), "ana@bahia.com", "errada"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, bcrypt.MinCost)

		users.EXPECT().GetByEmail(gomock.Any(), "x@bahia.com").Return(entities.UserAccount{}, nil)

		if _, err := uc.Login(context.Background(), "x@bahia.com", "segredo1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthUseCase_Tokens(t *testing.T) {
	t.Run("revoked token is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		denylist := mock_interfaces.NewMockITokenDenylist(ctrl)
		uc := NewAuthUseCase(nil, tokens, denylist, bcrypt.MinCost)

		tokens.EXPECT().Parse("tok").Return(interfaces.TokenClaims{UserID: "u-1", TokenID: "j-1"}, nil)
		denylist.EXPECT().IsRevoked(gomock.Any(), "j-1").Return(true, nil)

		if _, err := uc.Authenticate(context.Background(), "tok"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(nil, tokens, nil, bcrypt.MinCost)

		tokens.EXPECT().Parse("bad").Return(interfaces.TokenClaims{}, errors.New("signature is invalid"))

		if _, err := uc.Authenticate(context.Background(), "bad"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("logout revokes for remaining lifetime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		denylist := mock_interfaces.NewMockITokenDenylist(ctrl)
		uc := NewAuthUseCase(nil, nil, denylist, bcrypt.MinCost)

		denylist.EXPECT().Revoke(gomock.Any(), "j-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, ttl time.Duration) error {
				if ttl <= 0 || ttl > time.Hour {
					t.Fatalf("unexpected ttl %v", ttl)
				}
				return nil
			},
		)

		err := uc.Logout(context.Background(), interfaces.TokenClaims{TokenID: "j-1", ExpiresAt: time.Now().Add(time.Hour)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("current user deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, bcrypt.MinCost)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserAccount{}, nil)

		if _, err := uc.CurrentUser(context.Background(), "u-1"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestProfileUseCase(t *testing.T) {
	t.Run("update keeps email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProfileUseCase(users)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserAccount{Profile: entities.UserProfile{ID: "u-1", Name: "Ana", Email: "ana@bahia.com", Role: entities.RoleUser}}, nil)
		users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.Email != "ana@bahia.com" || p.Role != entities.RoleAdmin || p.Name != "Ana" {
					t.Fatalf("unexpected profile: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.UserProfile{ID: "u-1", Email: "other@x.com", Role: entities.RoleAdmin}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settings of unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProfileUseCase(users)

		users.EXPECT().GetByID(gomock.Any(), "u-9").Return(entities.UserAccount{}, nil)

		if _, err := uc.GetSettings(context.Background(), "u-9"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("update settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProfileUseCase(users)

		s := entities.UserSettings{CompanyName: "Bahia Elétrica", CompanyCNPJ: "00.000.000/0001-00"}
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserAccount{Profile: entities.UserProfile{ID: "u-1"}}, nil)
		users.EXPECT().UpdateSettings(gomock.Any(), "u-1", s).Return(s, nil)

		res, err := uc.UpdateSettings(context.Background(), "u-1", s)
		if err != nil || res.CompanyName != "Bahia Elétrica" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
