package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	// Create inserts a new account. A duplicate username yields
	// ErrConflict.
	Create(ctx context.Context, username, passwordHash string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
}
