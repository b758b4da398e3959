package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type CustomerUsecase struct {
	customers repo.CustomerRepository
}

func NewCustomerUsecase(customers repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers}
}

type CreateCustomerInput struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// UpdateCustomerInput is a partial update; nil fields stay untouched.
type UpdateCustomerInput struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

// customerFieldNames maps struct fields back to the wire names used in
// validation messages.
var customerFieldNames = map[string]string{
	"Code":        "code",
	"Name":        "name",
	"PhoneNumber": "phone_number",
}

func missingFieldError(names map[string]string, err error) error {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		if name, ok := names[verr[0].Field()]; ok {
			return NewHTTPError(http.StatusBadRequest, "Missing required field: "+name)
		}
	}
	return NewHTTPError(http.StatusBadRequest, "Invalid request body")
}

func (u *CustomerUsecase) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Failed to fetch customers")
	}
	return customers, nil
}

func (u *CustomerUsecase) Create(ctx context.Context, in CreateCustomerInput) (model.Customer, error) {
	if err := validate.Struct(in); err != nil {
		return model.Customer{}, missingFieldError(customerFieldNames, err)
	}

	// No advisory pre-check on the code; the unique constraint decides.
	c, err := u.customers.Create(ctx, in.Code, in.Name, in.PhoneNumber)
	if errors.Is(err, repo.ErrConflict) {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "Customer code already exists")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "Failed to create customer")
	}
	return c, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	c, err := u.customers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch customer")
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id uuid.UUID, in UpdateCustomerInput) (model.Customer, error) {
	patch := repo.CustomerPatch{
		Code:        in.Code,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
	}
	if patch.Empty() {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	c, err := u.customers.Update(ctx, id, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if errors.Is(err, repo.ErrConflict) {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "Customer code already exists")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "Failed to update customer")
	}
	return c, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	err := u.customers.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Failed to delete customer")
	}
	return nil
}
