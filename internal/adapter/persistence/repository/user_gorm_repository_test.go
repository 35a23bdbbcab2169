package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newUserRepoForTest(t *testing.T) (*UserGormRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return NewUserGormRepository(db), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestUserGormRepository_GetByEmail(t *testing.T) {
	t.Run("loads account with settings", func(t *testing.T) {
		repo, mock := newUserRepoForTest(t)
		created := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "picture", "role", "created_at", "updated_at"}).
				AddRow("u-1", "ana@bahia.com", "$2a$10$hash", "Ana", "", "admin", created, created))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_settings" WHERE "user_settings"."user_id" = $1`)).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "company_name", "company_cnpj"}).
				AddRow("u-1", "Ana Souza", "Bahia Elétrica", "12.345.678/0001-90"))

		acc, err := repo.GetByEmail(context.Background(), "ana@bahia.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acc.Profile.ID != "u-1" || acc.PasswordHash != "$2a$10$hash" || !acc.Profile.CreatedAt.Equal(created) {
			t.Fatalf("unexpected profile: %+v", acc)
		}
		if acc.Settings.CompanyName != "Bahia Elétrica" || acc.Settings.CompanyCNPJ != "12.345.678/0001-90" {
			t.Fatalf("unexpected settings: %+v", acc.Settings)
		}
		expectationsMet(t, mock)
	})

	t.Run("unknown email is a zero account", func(t *testing.T) {
		repo, mock := newUserRepoForTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		acc, err := repo.GetByEmail(context.Background(), "ghost@bahia.com")
		if err != nil || acc.Profile.ID != "" {
			t.Fatalf("unexpected result err=%v acc=%+v", err, acc)
		}
		expectationsMet(t, mock)
	})
}

func TestUserGormRepository_Create(t *testing.T) {
	account := entities.UserAccount{
		Profile:      entities.UserProfile{ID: "u-2", Name: "Carlos", Email: "carlos@bahia.com", Role: "technician"},
		PasswordHash: "$2a$10$hash",
		Settings:     entities.UserSettings{FullName: "Carlos Lima"},
	}

	t.Run("writes user and settings in one transaction", func(t *testing.T) {
		repo, mock := newUserRepoForTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "user_settings"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		acc, err := repo.Create(context.Background(), account)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acc.Profile.Email != "carlos@bahia.com" || acc.Settings.FullName != "Carlos Lima" {
			t.Fatalf("unexpected account: %+v", acc)
		}
		expectationsMet(t, mock)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo, mock := newUserRepoForTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), account)
		if !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		expectationsMet(t, mock)
	})
}

func TestUserGormRepository_UpdateProfile(t *testing.T) {
	t.Run("unknown id yields a zero profile", func(t *testing.T) {
		repo, mock := newUserRepoForTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		p, err := repo.UpdateProfile(context.Background(), entities.UserProfile{ID: "u-9", Name: "X"})
		if err != nil || p.ID != "" {
			t.Fatalf("unexpected result err=%v p=%+v", err, p)
		}
		expectationsMet(t, mock)
	})

	t.Run("driver failure", func(t *testing.T) {
		repo, mock := newUserRepoForTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.UpdateProfile(context.Background(), entities.UserProfile{ID: "u-1", Name: "Ana"})
		if !errors.Is(err, entities.ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		expectationsMet(t, mock)
	})
}

func TestUserGormRepository_Delete(t *testing.T) {
	repo, mock := newUserRepoForTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "user_settings" WHERE user_id = $1`)).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestUserGormRepository_ListFailure(t *testing.T) {
	repo, mock := newUserRepoForTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY created_at`)).
		WillReturnError(errors.New("too many connections"))

	if _, err := repo.List(context.Background()); !errors.Is(err, entities.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	expectationsMet(t, mock)
}
