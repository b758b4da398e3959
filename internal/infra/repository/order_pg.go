package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderPgRepository struct {
	db *pgxpool.Pool
}

func NewOrderPgRepository(db *pgxpool.Pool) *OrderPgRepository {
	return &OrderPgRepository{db: db}
}

const orderJoinSelect = `
	SELECT
		o.id, o.customer_id, o.item, o.amount, o.order_time, o.created_at, o.updated_at,
		c.code AS customer_code, c.name AS customer_name, c.phone_number AS customer_phone
	FROM orders o
	JOIN customers c ON o.customer_id = c.id`

func scanJoinedOrder(row pgx.Row) (model.OrderWithCustomer, error) {
	var o model.OrderWithCustomer
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.Item, &o.Amount, &o.OrderTime, &o.CreatedAt, &o.UpdatedAt,
		&o.CustomerCode, &o.CustomerName, &o.CustomerPhone,
	)
	return o, err
}

func (r *OrderPgRepository) collectJoined(ctx context.Context, sql string, args ...interface{}) ([]model.OrderWithCustomer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.OrderWithCustomer{}
	for rows.Next() {
		o, err := scanJoinedOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	return orders, nil
}

func (r *OrderPgRepository) List(ctx context.Context) ([]model.OrderWithCustomer, error) {
	return r.collectJoined(ctx, orderJoinSelect+`
		ORDER BY o.order_time DESC`)
}

func (r *OrderPgRepository) FindByID(ctx context.Context, id uuid.UUID) (model.OrderWithCustomer, error) {
	o, err := scanJoinedOrder(r.db.QueryRow(ctx, orderJoinSelect+`
		WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.OrderWithCustomer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderWithCustomer{}, fmt.Errorf("find order %s: %w", id, err)
	}
	return o, nil
}

func (r *OrderPgRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.OrderWithCustomer, error) {
	return r.collectJoined(ctx, orderJoinSelect+`
		WHERE o.customer_id = $1
		ORDER BY o.order_time DESC`, customerID)
}

func (r *OrderPgRepository) Create(ctx context.Context, customerID uuid.UUID, item string, amount model.Amount) (model.Order, error) {
	sql := `
		INSERT INTO orders (customer_id, item, amount)
		VALUES ($1, $2, $3)
		RETURNING id, customer_id, item, amount, order_time, created_at, updated_at`

	var o model.Order
	err := r.db.QueryRow(ctx, sql, customerID, item, amount).Scan(
		&o.ID, &o.CustomerID, &o.Item, &o.Amount, &o.OrderTime, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err := translatePgError(err); errors.Is(err, repo.ErrForeignKey) {
			return model.Order{}, err
		}
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (r *OrderPgRepository) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, item string, amount model.Amount) (model.Order, error) {
	sql := `
		UPDATE orders
		SET customer_id = $1, item = $2, amount = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING id, customer_id, item, amount, order_time, created_at, updated_at`

	var o model.Order
	err := r.db.QueryRow(ctx, sql, customerID, item, amount, id).Scan(
		&o.ID, &o.CustomerID, &o.Item, &o.Amount, &o.OrderTime, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		if err := translatePgError(err); errors.Is(err, repo.ErrForeignKey) {
			return model.Order{}, err
		}
		return model.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}
	return o, nil
}

func (r *OrderPgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
