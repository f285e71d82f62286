package transactionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const transactionColumns = "id, amount, item_id, user_id, merchant_id, transaction_date"

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(&t.ID, &t.Amount, &t.ItemID, &t.UserID, &t.MerchantID, &t.TransactionDate); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (amount, item_id, user_id, merchant_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + transactionColumns
	row := r.db.QueryRow(ctx, query, transaction.Amount, transaction.ItemID, transaction.UserID, transaction.MerchantID)
	created, err := scanTransaction(row)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("item, user or merchant: %w", domain.ErrInvalidReference)
		}
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	transaction, err := scanTransaction(r.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&total); err != nil {
		zap.L().Error("failed to count transactions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete transaction", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
