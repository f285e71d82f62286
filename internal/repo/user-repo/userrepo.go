package userrepo

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

const userColumns = "id, username, email, password_hash, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	created, err := scanUser(repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("username or email %w", domain.ErrAlreadyExists)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := repo.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (repo *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		zap.L().Error("failed to count users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Update replaces username and email. It returns nil when the user does not exist.
func (repo *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET username = $1, email = $2
		WHERE id = $3
		RETURNING ` + userColumns
	updated, err := scanUser(repo.db.QueryRow(ctx, query, user.Username, user.Email, user.ID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, nil
		case pg.IsUniqueViolation(err):
			return nil, fmt.Errorf("username or email %w", domain.ErrAlreadyExists)
		}
		zap.L().Error("can't update user", zap.Int("id", user.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete reports whether a row was removed.
func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("user %w", domain.ErrReferenced)
		}
		zap.L().Error("can't delete user", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
