package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var (
	createdAt = time.Date(2024, 11, 2, 16, 9, 57, 0, time.UTC)
	columns   = []string{"id", "username", "email", "password_hash", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, username, email, password_hash, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name: "User created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ash", "ash@example.com", "hash").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "ash", "ash@example.com", "hash", createdAt))
			},
			result: &domain.User{ID: 1, Username: "ash", Email: "ash@example.com", PasswordHash: "hash", CreatedAt: createdAt},
		},
		{
			name: "Duplicate username",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ash", "ash@example.com", "hash").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrAlreadyExists,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ash", "ash@example.com", "hash").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.User{Username: "ash", Email: "ash@example.com", PasswordHash: "hash"})
			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, domain.ErrAlreadyExists) {
					assert.ErrorIs(t, err, domain.ErrAlreadyExists)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "ash", "ash@example.com", "hash", createdAt))
			},
			result: &domain.User{ID: 1, Username: "ash", Email: "ash@example.com", PasswordHash: "hash", CreatedAt: createdAt},
		},
		{
			name: "User not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
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
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`)

	mock.ExpectQuery(query).
		WithArgs("ash").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "ash", "ash@example.com", "hash", createdAt))
	user, err := repo.FindByUsername(context.Background(), "ash")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	mock.ExpectQuery(query).WithArgs("misty").WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByUsername(context.Background(), "misty")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, username, email, password_hash, created_at FROM users ORDER BY id LIMIT $1 OFFSET $2`)

	tests := []struct {
		name      string
		limit     int
		offset    int
		mockSetup func()
		expectErr bool
		result    []domain.User
	}{
		{
			name:   "Second page",
			limit:  50,
			offset: 50,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(50, 50).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(51, "ash", "ash@example.com", "hash", createdAt).
						AddRow(52, "misty", "misty@example.com", "hash", createdAt))
			},
			result: []domain.User{
				{ID: 51, Username: "ash", Email: "ash@example.com", PasswordHash: "hash", CreatedAt: createdAt},
				{ID: 52, Username: "misty", Email: "misty@example.com", PasswordHash: "hash", CreatedAt: createdAt},
			},
		},
		{
			name:   "Page past the end is empty",
			limit:  50,
			offset: 500,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(50, 500).WillReturnRows(pgxmock.NewRows(columns))
			},
			result: []domain.User{},
		},
		{
			name:   "Database error",
			limit:  50,
			offset: 0,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(50, 0).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.limit, tt.offset)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)

	mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(101))
	total, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 101, total)

	mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
	_, err = repo.Count(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE users SET username = $1, email = $2 WHERE id = $3 RETURNING id, username, email, password_hash, created_at`)
	user := &domain.User{ID: 1, Username: "ash", Email: "ketchum@example.com"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name: "User updated",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ash", "ketchum@example.com", 1).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "ash", "ketchum@example.com", "hash", createdAt))
			},
			result: &domain.User{ID: 1, Username: "ash", Email: "ketchum@example.com", PasswordHash: "hash", CreatedAt: createdAt},
		},
		{
			name: "User missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ash", "ketchum@example.com", 1).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Email taken",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ash", "ketchum@example.com", 1).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Update(context.Background(), user)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		deleted   bool
		expectErr error
	}{
		{
			name: "User deleted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: true,
		},
		{
			name: "User missing",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "User still owns records",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(1).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectErr: domain.ErrReferenced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), 1)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
