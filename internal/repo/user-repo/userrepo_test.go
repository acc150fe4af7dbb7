package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var userRowColumns = []string{"id", "name", "login", "password_hash", "picture_url", "is_virtual", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE id = $1")

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Virtual user found",
			id:   "u-virtual",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRowColumns).
					AddRow("u-virtual", "Bob", "", "", "http://assets/bob.png", true, createdAt)
				mock.ExpectQuery(query).WithArgs("u-virtual").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:         "u-virtual",
				Name:       "Bob",
				PictureURL: "http://assets/bob.png",
				IsVirtual:  true,
				CreatedAt:  createdAt,
			},
		},
		{
			name: "User not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "u-1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByIDs(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE id = ANY($1::uuid[])")
	ids := []string{"u-1", "u-2"}

	rows := pgxmock.NewRows(userRowColumns).
		AddRow("u-1", "Alice", "alice", "hash", "", false, createdAt).
		AddRow("u-2", "Bob", "", "", "", true, createdAt)
	mock.ExpectQuery(query).WithArgs(ids).WillReturnRows(rows)

	users, err := repo.FindByIDs(context.Background(), ids)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Login)
	assert.True(t, users[1].IsVirtual)

	mock.ExpectQuery(query).WithArgs(ids).WillReturnError(errors.New("database error"))
	users, err = repo.FindByIDs(context.Background(), ids)
	assert.Error(t, err)
	assert.Nil(t, users)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE login = $1")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRowColumns).
					AddRow("u-1", "Test", "test_user", "hashed_password", "", false, createdAt)
				mock.ExpectQuery(query).WithArgs("test_user").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           "u-1",
				Name:         "Test",
				Login:        "test_user",
				PasswordHash: "hashed_password",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("non_existing_user").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("test_user").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
		INSERT INTO users (id, name, login, password_hash, picture_url, is_virtual)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		RETURNING created_at
	`)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name: "Create virtual user",
			user: &domain.User{ID: "u-v", Name: "Bob", IsVirtual: true},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u-v", "Bob", "", "", "", true).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
			},
			result: &domain.User{ID: "u-v", Name: "Bob", IsVirtual: true, CreatedAt: createdAt},
		},
		{
			name: "Login already taken",
			user: &domain.User{ID: "u-1", Name: "Alice", Login: "alice", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u-1", "Alice", "alice", "hash", "", false).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			user: &domain.User{ID: "u-1", Name: "Alice", Login: "alice", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u-1", "Alice", "alice", "hash", "", false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("DELETE FROM users WHERE id = $1 AND is_virtual")

	mock.ExpectExec(query).WithArgs("u-v").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), "u-v"))

	mock.ExpectExec(query).WithArgs("u-real").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u-real"), domain.ErrNotFound)

	mock.ExpectExec(query).WithArgs("u-v").WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), "u-v"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")

	mock.ExpectQuery(query).WithArgs("u-1").WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("u-1"))
	assert.NoError(t, repo.LockByID(context.Background(), "u-1"))

	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	assert.ErrorIs(t, repo.LockByID(context.Background(), "missing"), domain.ErrNotFound)

	mock.ExpectQuery(query).WithArgs("u-1").WillReturnError(errors.New("lock timeout"))
	assert.EqualError(t, repo.LockByID(context.Background(), "u-1"), "lock timeout")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PictureInUse(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE picture_url = $1)")

	mock.ExpectQuery(query).WithArgs("http://assets/a.png").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	inUse, err := repo.PictureInUse(context.Background(), "http://assets/a.png")
	assert.NoError(t, err)
	assert.True(t, inUse)

	mock.ExpectQuery(query).WithArgs("http://assets/a.png").WillReturnError(errors.New("database error"))
	inUse, err = repo.PictureInUse(context.Background(), "http://assets/a.png")
	assert.Error(t, err)
	assert.False(t, inUse)
}

func TestRepository_FindOrphanVirtual(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(userRowColumns).
		AddRow("u-v", "Ghost", "", "", "http://assets/g.png", true, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.is_virtual")).WithArgs(50).WillReturnRows(rows)

	users, err := repo.FindOrphanVirtual(context.Background(), 50)
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{{
		ID:         "u-v",
		Name:       "Ghost",
		PictureURL: "http://assets/g.png",
		IsVirtual:  true,
		CreatedAt:  createdAt,
	}}, users)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.is_virtual")).WithArgs(50).WillReturnError(errors.New("database error"))
	users, err = repo.FindOrphanVirtual(context.Background(), 50)
	assert.Error(t, err)
	assert.Nil(t, users)

	assert.NoError(t, mock.ExpectationsWereMet())
}
