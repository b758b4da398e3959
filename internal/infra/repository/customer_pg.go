package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerPgRepository struct {
	db *pgxpool.Pool
}

func NewCustomerPgRepository(db *pgxpool.Pool) *CustomerPgRepository {
	return &CustomerPgRepository{db: db}
}

const customerColumns = "id, code, name, phone_number, created_at, updated_at"

func scanCustomer(row pgx.Row) (model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CustomerPgRepository) List(ctx context.Context) ([]model.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerPgRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("find customer %s: %w", id, err)
	}
	return c, nil
}

func (r *CustomerPgRepository) FindByCode(ctx context.Context, code string) (model.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE code = $1`

	c, err := scanCustomer(r.db.QueryRow(ctx, sql, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("find customer by code: %w", err)
	}
	return c, nil
}

func (r *CustomerPgRepository) Create(ctx context.Context, code, name, phoneNumber string) (model.Customer, error) {
	sql := `
		INSERT INTO customers (code, name, phone_number)
		VALUES ($1, $2, $3)
		RETURNING ` + customerColumns

	c, err := scanCustomer(r.db.QueryRow(ctx, sql, code, name, phoneNumber))
	if err != nil {
		if err := translatePgError(err); errors.Is(err, repo.ErrConflict) {
			return model.Customer{}, err
		}
		return model.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (r *CustomerPgRepository) Update(ctx context.Context, id uuid.UUID, patch repo.CustomerPatch) (model.Customer, error) {
	set := []string{}
	args := []interface{}{}

	appendField := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	appendField("code", patch.Code)
	appendField("name", patch.Name)
	appendField("phone_number", patch.PhoneNumber)

	args = append(args, id)
	sql := fmt.Sprintf(`
		UPDATE customers
		SET %s, updated_at = CURRENT_TIMESTAMP
		WHERE id = $%d
		RETURNING `+customerColumns,
		strings.Join(set, ", "), len(args))

	c, err := scanCustomer(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		if err := translatePgError(err); errors.Is(err, repo.ErrConflict) {
			return model.Customer{}, err
		}
		return model.Customer{}, fmt.Errorf("update customer %s: %w", id, err)
	}
	return c, nil
}

func (r *CustomerPgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Dependent orders go with the row via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
