package merchantrepo

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

const merchantColumns = "id, name, description, tax_id, user_id"

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	var m domain.Merchant
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.TaxID, &m.UserID); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error) {
	query := `
		INSERT INTO merchants (name, description, tax_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + merchantColumns
	created, err := scanMerchant(r.db.QueryRow(ctx, query, merchant.Name, merchant.Description, merchant.TaxID, merchant.UserID))
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("owner: %w", domain.ErrInvalidReference)
		}
		zap.L().Error("can't save merchant", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Merchant, error) {
	merchant, err := scanMerchant(r.db.QueryRow(ctx, "SELECT "+merchantColumns+" FROM merchants WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find merchant", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return merchant, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Merchant, error) {
	query := `
		SELECT ` + merchantColumns + `
		FROM merchants
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch merchants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	merchants := make([]domain.Merchant, 0, limit)
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			zap.L().Error("failed to scan merchant row", zap.Error(err))
			return nil, err
		}
		merchants = append(merchants, *m)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate merchants", zap.Error(err))
		return nil, err
	}
	return merchants, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM merchants").Scan(&total); err != nil {
		zap.L().Error("failed to count merchants", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Update replaces name, description and tax id. It returns nil when the merchant does not exist.
func (r *Repository) Update(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error) {
	query := `
		UPDATE merchants
		SET name = $1, description = $2, tax_id = $3
		WHERE id = $4
		RETURNING ` + merchantColumns
	updated, err := scanMerchant(r.db.QueryRow(ctx, query, merchant.Name, merchant.Description, merchant.TaxID, merchant.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update merchant", zap.Int("id", merchant.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM merchants WHERE id = $1", id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("merchant %w", domain.ErrReferenced)
		}
		zap.L().Error("can't delete merchant", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
