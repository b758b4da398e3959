package repository

import (
	"errors"

	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translatePgError maps constraint violations to the repository
// sentinels. The constraints are the authoritative signal for
// conflicts; there is no advisory pre-check anywhere above this layer.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return repo.ErrConflict
		case codeForeignKeyViolation:
			return repo.ErrForeignKey
		}
	}
	return err
}
