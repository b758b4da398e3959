package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

// OrderNotifier receives the created order for a best-effort
// notification. Implementations must never block the caller beyond a
// bounded single attempt and must absorb their own failures.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, o model.OrderWithCustomer)
}

type OrderUsecase struct {
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	notifier  OrderNotifier
}

func NewOrderUsecase(orders repo.OrderRepository, customers repo.CustomerRepository, notifier OrderNotifier) *OrderUsecase {
	return &OrderUsecase{orders: orders, customers: customers, notifier: notifier}
}

// CreateOrderInput addresses the customer by id. CustomerCode is a
// deprecated fallback used only when CustomerID is empty; both paths
// report a missing customer the same way.
type CreateOrderInput struct {
	CustomerID   string `json:"customer_id"`
	CustomerCode string `json:"customer_code"`
	Item         string `json:"item"`
	Amount       string `json:"amount"`
}

type UpdateOrderInput struct {
	CustomerID string `json:"customer_id"`
	Item       string `json:"item"`
	Amount     string `json:"amount"`
}

func (u *OrderUsecase) List(ctx context.Context) ([]model.OrderWithCustomer, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Failed to fetch orders")
	}
	return orders, nil
}

func (u *OrderUsecase) resolveCustomer(ctx context.Context, in CreateOrderInput) (model.Customer, error) {
	switch {
	case in.CustomerID != "":
		id, err := uuid.Parse(in.CustomerID)
		if err != nil {
			return model.Customer{}, NewHTTPError(http.StatusBadRequest, "Invalid customer_id")
		}
		return u.customers.FindByID(ctx, id)
	case in.CustomerCode != "":
		return u.customers.FindByCode(ctx, in.CustomerCode)
	default:
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "Missing required field: customer_id")
	}
}

func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (model.OrderWithCustomer, error) {
	if in.Item == "" {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Missing required field: item")
	}
	if in.Amount == "" {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Missing required field: amount")
	}
	amount, err := model.ParseAmount(in.Amount)
	if err != nil {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Invalid amount")
	}

	customer, err := u.resolveCustomer(ctx, in)
	if errors.Is(err, repo.ErrNotFound) {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Customer not found")
	}
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.OrderWithCustomer{}, err
		}
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}

	order, err := u.orders.Create(ctx, customer.ID, in.Item, amount)
	if errors.Is(err, repo.ErrForeignKey) {
		// The customer vanished between the lookup and the insert.
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Customer not found")
	}
	if err != nil {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}

	out := model.OrderWithCustomer{
		Order:         order,
		CustomerCode:  customer.Code,
		CustomerName:  customer.Name,
		CustomerPhone: customer.PhoneNumber,
	}

	// Best effort; the outcome never changes the create response.
	u.notifier.OrderCreated(ctx, out)

	return out, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id uuid.UUID) (model.OrderWithCustomer, error) {
	o, err := u.orders.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch order")
	}
	return o, nil
}

// Update overwrites all mutable fields; orders have no partial-update
// semantics.
func (u *OrderUsecase) Update(ctx context.Context, id uuid.UUID, in UpdateOrderInput) (model.OrderWithCustomer, error) {
	if in.CustomerID == "" {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Missing required field: customer_id")
	}
	if in.Item == "" {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Missing required field: item")
	}
	if in.Amount == "" {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Missing required field: amount")
	}

	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Invalid customer_id")
	}
	amount, err := model.ParseAmount(in.Amount)
	if err != nil {
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Invalid amount")
	}

	if _, err := u.orders.Update(ctx, id, customerID, in.Item, amount); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.OrderWithCustomer{}, NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if errors.Is(err, repo.ErrForeignKey) {
			return model.OrderWithCustomer{}, NewHTTPError(http.StatusBadRequest, "Customer not found")
		}
		return model.OrderWithCustomer{}, NewHTTPError(http.StatusInternalServerError, "Failed to update order")
	}

	return u.Get(ctx, id)
}

func (u *OrderUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	err := u.orders.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Failed to delete order")
	}
	return nil
}

// ListByCustomer returns the customer's orders, newest order_time
// first. An existing customer with no orders yields an empty slice; a
// missing customer is an error.
func (u *OrderUsecase) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.OrderWithCustomer, error) {
	if _, err := u.customers.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "Customer not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "Failed to fetch orders")
	}
	return u.listForCustomer(ctx, customerID)
}

// ListByCustomerCode is the code-addressed variant of ListByCustomer.
func (u *OrderUsecase) ListByCustomerCode(ctx context.Context, code string) ([]model.OrderWithCustomer, error) {
	if code == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "customer_code parameter is required")
	}
	customer, err := u.customers.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Failed to fetch orders")
	}
	return u.listForCustomer(ctx, customer.ID)
}

func (u *OrderUsecase) listForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.OrderWithCustomer, error) {
	orders, err := u.orders.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Failed to fetch orders")
	}
	return orders, nil
}
