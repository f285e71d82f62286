package merchantrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "name", "description", "tax_id", "user_id"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO merchants (name, description, tax_id, user_id) VALUES ($1, $2, $3, $4) RETURNING id, name, description, tax_id, user_id`)
	input := &domain.Merchant{Name: "Poke Mart", Description: "Potions", TaxID: "7707083893", UserID: 1}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.Merchant
	}{
		{
			name: "Merchant created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Poke Mart", "Potions", "7707083893", 1).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "Poke Mart", "Potions", "7707083893", 1))
			},
			result: &domain.Merchant{ID: 3, Name: "Poke Mart", Description: "Potions", TaxID: "7707083893", UserID: 1},
		},
		{
			name: "Owner does not exist",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Poke Mart", "Potions", "7707083893", 1).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Poke Mart", "Potions", "7707083893", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), input)
			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, domain.ErrNotFound) {
					assert.ErrorIs(t, err, domain.ErrInvalidReference)
				}
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, name, description, tax_id, user_id FROM merchants WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs(3).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "Poke Mart", "Potions", "7707083893", 1))
	merchant, err := repo.FindByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Merchant{ID: 3, Name: "Poke Mart", Description: "Potions", TaxID: "7707083893", UserID: 1}, merchant)

	mock.ExpectQuery(query).WithArgs(4).WillReturnError(pgx.ErrNoRows)
	merchant, err = repo.FindByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, merchant)

	mock.ExpectQuery(query).WithArgs(5).WillReturnError(errors.New("database error"))
	_, err = repo.FindByID(context.Background(), 5)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAndCount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, tax_id, user_id FROM merchants ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(50, 0).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, "Poke Mart", "", "1", 1).
			AddRow(2, "Silph Co", "", "2", 2))
	merchants, err := repo.List(context.Background(), 50, 0)
	assert.NoError(t, err)
	assert.Len(t, merchants, 2)
	assert.Equal(t, 1, merchants[0].ID)
	assert.Equal(t, 2, merchants[1].ID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM merchants`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	total, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE merchants SET name = $1, description = $2, tax_id = $3 WHERE id = $4 RETURNING id, name, description, tax_id, user_id`)
	input := &domain.Merchant{ID: 3, Name: "Poke Mart", Description: "Balls", TaxID: "1"}

	mock.ExpectQuery(query).WithArgs("Poke Mart", "Balls", "1", 3).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "Poke Mart", "Balls", "1", 1))
	merchant, err := repo.Update(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Merchant{ID: 3, Name: "Poke Mart", Description: "Balls", TaxID: "1", UserID: 1}, merchant)

	mock.ExpectQuery(query).WithArgs("Poke Mart", "Balls", "1", 3).WillReturnError(pgx.ErrNoRows)
	merchant, err = repo.Update(context.Background(), input)
	assert.NoError(t, err)
	assert.Nil(t, merchant)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM merchants WHERE id = $1`)

	mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.False(t, deleted)

	mock.ExpectExec(query).WithArgs(3).WillReturnError(&pgconn.PgError{Code: "23503"})
	deleted, err = repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrReferenced)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
