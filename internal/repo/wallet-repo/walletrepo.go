package walletrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const walletColumns = "id, balance, user_id"

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := row.Scan(&wallet.ID, &wallet.Balance, &wallet.UserID); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (balance, user_id)
		VALUES ($1, $2)
		RETURNING ` + walletColumns
	created, err := scanWallet(r.db.QueryRow(ctx, query, wallet.Balance, wallet.UserID))
	if err != nil {
		switch {
		case pg.IsUniqueViolation(err):
			return nil, fmt.Errorf("wallet for user %d %w", wallet.UserID, domain.ErrAlreadyExists)
		case pg.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("owner: %w", domain.ErrInvalidReference)
		}
		zap.L().Error("can't create wallet", zap.Int("user_id", wallet.UserID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Wallet, error) {
	return r.findOne(ctx, "SELECT "+walletColumns+" FROM wallets WHERE id = $1", id)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	return r.findOne(ctx, "SELECT "+walletColumns+" FROM wallets WHERE user_id = $1", userID)
}

func (r *Repository) findOne(ctx context.Context, query string, arg int) (*domain.Wallet, error) {
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	wallets := make([]domain.Wallet, 0, limit)
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, *wallet)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate wallets", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM wallets").Scan(&total); err != nil {
		zap.L().Error("failed to count wallets", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Debit subtracts amount from the wallet only if the balance covers it.
// It returns nil when the wallet is missing or the balance is too low.
func (r *Repository) Debit(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to debit wallet", zap.Int("wallet_id", walletID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// AddBalance applies a signed delta to the user's wallet unless the result would go negative.
// It returns nil when no row was changed.
func (r *Repository) AddBalance(ctx context.Context, userID int, delta decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $1
		WHERE user_id = $2 AND balance + $1 >= 0
		RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, delta, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update wallet balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) DeleteByUserID(ctx context.Context, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM wallets WHERE user_id = $1", userID)
	if err != nil {
		zap.L().Error("can't delete wallet", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
