package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("sql expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestUserRepository_FindByLogin_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, login, created_at FROM users WHERE login = $1`)).
		WithArgs("alice").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "login", "created_at"}).
				AddRow("uid-1", "Alice", "alice", created),
		)

	user, err := repo.FindByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByLogin: %v", err)
	}
	if user.ID != "uid-1" || user.Name != "Alice" || user.Login != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserRepository_FindByLogin_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, login, created_at FROM users WHERE login = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.FindByLogin(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		ID:        "uid-1",
		Name:      "Alice",
		Login:     "alice",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, name, login, created_at) VALUES ($1, $2, $3, $4)`)).
		WithArgs(user.ID, user.Name, user.Login, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.User{ID: "uid-2", Login: "alice"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists on unique violation, got %v", err)
	}
}
