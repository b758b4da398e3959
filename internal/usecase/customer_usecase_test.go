package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, code string) (model.Customer, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, code, name, phoneNumber string) (model.Customer, error) {
	args := m.Called(ctx, code, name, phoneNumber)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id uuid.UUID, patch repo.CustomerPatch) (model.Customer, error) {
	args := m.Called(ctx, id, patch)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
	assert.Equal(t, message, he.Message)
}

func strptr(s string) *string { return &s }

func TestCustomerUsecase_Create_MissingField(t *testing.T) {
	uc := usecase.NewCustomerUsecase(new(MockCustomerRepository))

	_, err := uc.Create(context.Background(), usecase.CreateCustomerInput{
		Code: "CUST001",
		Name: "John Doe",
	})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing required field: phone_number")

	_, err = uc.Create(context.Background(), usecase.CreateCustomerInput{
		Name:        "John Doe",
		PhoneNumber: "+254712345678",
	})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing required field: code")
}

func TestCustomerUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	created := model.Customer{
		ID:          uuid.New(),
		Code:        "CUST001",
		Name:        "John Doe",
		PhoneNumber: "+254712345678",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	cRepo.On("Create", mock.Anything, "CUST001", "John Doe", "+254712345678").Return(created, nil)

	out, err := uc.Create(ctx, usecase.CreateCustomerInput{
		Code:        "CUST001",
		Name:        "John Doe",
		PhoneNumber: "+254712345678",
	})
	assert.NoError(t, err)
	assert.Equal(t, created, out)
	assert.NotEqual(t, uuid.UUID{}, out.ID)

	cRepo.AssertExpectations(t)
}

func TestCustomerUsecase_Create_DuplicateCode(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("Create", mock.Anything, "CUST001", "Jane", "+254700000000").
		Return(model.Customer{}, repo.ErrConflict)

	_, err := uc.Create(context.Background(), usecase.CreateCustomerInput{
		Code:        "CUST001",
		Name:        "Jane",
		PhoneNumber: "+254700000000",
	})
	assertHTTPError(t, err, http.StatusBadRequest, "Customer code already exists")

	cRepo.AssertExpectations(t)
}

func TestCustomerUsecase_Get_NotFound(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	id := uuid.New()
	cRepo.On("FindByID", mock.Anything, id).Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), id)
	assertHTTPError(t, err, http.StatusNotFound, "Customer not found")
}

func TestCustomerUsecase_Update_NoFields(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	_, err := uc.Update(context.Background(), uuid.New(), usecase.UpdateCustomerInput{})
	assertHTTPError(t, err, http.StatusBadRequest, "No fields to update")

	cRepo.AssertNotCalled(t, "Update")
}

func TestCustomerUsecase_Update_PartialPassesOnlySuppliedFields(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	id := uuid.New()
	expectedPatch := repo.CustomerPatch{Name: strptr("New Name")}
	updated := model.Customer{ID: id, Code: "CUST001", Name: "New Name", PhoneNumber: "+254712345678"}
	cRepo.On("Update", mock.Anything, id, expectedPatch).Return(updated, nil)

	out, err := uc.Update(context.Background(), id, usecase.UpdateCustomerInput{Name: strptr("New Name")})
	assert.NoError(t, err)
	assert.Equal(t, "CUST001", out.Code)
	assert.Equal(t, "New Name", out.Name)

	cRepo.AssertExpectations(t)
}

func TestCustomerUsecase_Update_DuplicateCode(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	id := uuid.New()
	cRepo.On("Update", mock.Anything, id, mock.Anything).Return(model.Customer{}, repo.ErrConflict)

	_, err := uc.Update(context.Background(), id, usecase.UpdateCustomerInput{Code: strptr("TAKEN")})
	assertHTTPError(t, err, http.StatusBadRequest, "Customer code already exists")
}

func TestCustomerUsecase_Delete_NotFound(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	id := uuid.New()
	cRepo.On("Delete", mock.Anything, id).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), id)
	assertHTTPError(t, err, http.StatusNotFound, "Customer not found")
}

func TestCustomerUsecase_List_StoreError(t *testing.T) {
	cRepo := new(MockCustomerRepository)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := uc.List(context.Background())
	assertHTTPError(t, err, http.StatusInternalServerError, "Failed to fetch customers")
}
