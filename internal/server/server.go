package server

import (
	"app/internal/config"
	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New builds the echo instance with every route registered. All
// /customers and /orders routes sit behind the bearer-token gate.
func New(cfg config.Config, authH *handler.AuthHandler, customerH *handler.CustomerHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	authMW := appmw.AuthJWT(cfg)

	authH.RegisterRoutes(e)
	customerH.RegisterRoutes(e, authMW)
	orderH.RegisterRoutes(e, authMW)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
