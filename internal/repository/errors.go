package repository

import "errors"

var (
	// ErrNotFound means no row matched the given identifier.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("duplicate resource")
	// ErrForeignKey means a referenced row does not exist.
	ErrForeignKey = errors.New("referenced row missing")
)
