package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

// CustomerPatch carries the fields of a partial update. Nil means
// "leave unchanged".
type CustomerPatch struct {
	Code        *string
	Name        *string
	PhoneNumber *string
}

func (p CustomerPatch) Empty() bool {
	return p.Code == nil && p.Name == nil && p.PhoneNumber == nil
}

type CustomerRepository interface {
	// List returns all customers, newest first.
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Customer, error)
	FindByCode(ctx context.Context, code string) (model.Customer, error)
	// Create inserts and returns the persisted row including the
	// store-generated id and timestamps. A duplicate code yields
	// ErrConflict straight from the unique constraint.
	Create(ctx context.Context, code, name, phoneNumber string) (model.Customer, error)
	// Update applies only the supplied fields and refreshes updated_at.
	Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) (model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
