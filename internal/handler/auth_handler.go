package handler

import (
	"errors"
	"net/http"

	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUsecase
}

func NewAuthHandler(registerUC *auth.RegisterUserUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC}
}

// RegisterRoutes wires the auth endpoints. These are the only
// unauthenticated routes in the API.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register/", h.register)
	e.POST("/auth/token/", h.token)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req auth.RegisterUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.registerUC.Execute(c.Request().Context(), req)
	switch {
	case errors.Is(err, auth.ErrUsernameRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password required"})
	case errors.Is(err, auth.ErrPasswordTooShort):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password too short"})
	case errors.Is(err, auth.ErrUserExists):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User already exists"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) token(c echo.Context) error {
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), req)
	switch {
	case errors.Is(err, auth.ErrUsernameRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password required"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, out)
}
