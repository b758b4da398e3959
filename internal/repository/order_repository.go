package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

type OrderRepository interface {
	// List returns all orders joined with their customer, ordered by
	// order_time descending.
	List(ctx context.Context) ([]model.OrderWithCustomer, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.OrderWithCustomer, error)
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.OrderWithCustomer, error)
	// Create inserts the order row. A customer_id that references no
	// row yields ErrForeignKey from the constraint.
	Create(ctx context.Context, customerID uuid.UUID, item string, amount model.Amount) (model.Order, error)
	// Update overwrites customer_id, item and amount and refreshes
	// updated_at. Orders have no partial-update semantics.
	Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, item string, amount model.Amount) (model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
