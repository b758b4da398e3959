package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPgRepository struct {
	db *pgxpool.Pool
}

func NewUserPgRepository(db *pgxpool.Pool) *UserPgRepository {
	return &UserPgRepository{db: db}
}

func (r *UserPgRepository) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	sql := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at`

	var u model.User
	err := r.db.QueryRow(ctx, sql, username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if err := translatePgError(err); errors.Is(err, repo.ErrConflict) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *UserPgRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	sql := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`

	var u model.User
	err := r.db.QueryRow(ctx, sql, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}
