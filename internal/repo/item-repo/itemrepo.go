package itemrepo

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

const itemColumns = "id, name, description, price, merchant_id, user_id"

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.MerchantID, &item.UserID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
		INSERT INTO items (name, description, price, merchant_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns
	created, err := scanItem(r.db.QueryRow(ctx, query, item.Name, item.Description, item.Price, item.MerchantID, item.UserID))
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("merchant or owner: %w", domain.ErrInvalidReference)
		}
		zap.L().Error("can't save item", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find item", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Item, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("failed to scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM items").Scan(&total); err != nil {
		zap.L().Error("failed to count items", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Update replaces the item payload fields. It returns nil when the item does not exist.
func (r *Repository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
		UPDATE items
		SET name = $1, description = $2, price = $3, merchant_id = $4
		WHERE id = $5
		RETURNING ` + itemColumns
	updated, err := scanItem(r.db.QueryRow(ctx, query, item.Name, item.Description, item.Price, item.MerchantID, item.ID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, nil
		case pg.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("merchant: %w", domain.ErrInvalidReference)
		}
		zap.L().Error("can't update item", zap.Int("id", item.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("item %w", domain.ErrReferenced)
		}
		zap.L().Error("can't delete item", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
