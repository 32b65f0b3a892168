package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Middleware struct {
	Auth          echo.MiddlewareFunc
	XRay          echo.MiddlewareFunc
	RequestLogger echo.MiddlewareFunc
}

func NewRouter(users *UsersHandler, roles *RolesHandler, perms *PermissionsHandler, m Middleware) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if m.XRay != nil {
		e.Use(m.XRay)
	}
	if m.RequestLogger != nil {
		e.Use(m.RequestLogger)
	}
	if m.Auth != nil {
		e.Use(m.Auth)
	}
	e.Use(ConfirmHeader())

	e.GET("/users", users.List)
	e.POST("/users", users.Create)
	e.PUT("/users/:id", users.Update)
	e.DELETE("/users/:id", users.Delete)

	e.GET("/roles", roles.List)
	e.POST("/roles", roles.Create)
	e.PUT("/roles/:id", roles.Update)
	e.DELETE("/roles/:id", roles.Delete)
	e.PATCH("/roles/:id/permissions/:permission", roles.SetPermission)

	e.GET("/permissions", perms.List)
	return e
}
