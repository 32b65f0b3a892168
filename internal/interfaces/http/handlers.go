package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rbac-admin/internal/application"
	"rbac-admin/internal/domain"
	"rbac-admin/internal/ports"
)

// Handlers translate HTTP requests into access service calls. The service
// envelope is the response body for every operation; clients branch on its
// success flag, so outcomes ship with 200 and only malformed requests or a
// missing delete acknowledgment change the status code.

func parseID(c echo.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func invalidPayload[T any](c echo.Context) error {
	return c.JSON(stdhttp.StatusBadRequest, domain.Fail[T]("Invalid request payload"))
}

type UsersHandler struct {
	service   *application.UserService
	confirmer ports.Confirmer
}

func NewUsersHandler(service *application.UserService, confirmer ports.Confirmer) *UsersHandler {
	return &UsersHandler{service: service, confirmer: confirmer}
}

type userRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (r userRequest) toDomain() domain.User {
	return domain.User{Name: r.Name, Email: r.Email, Role: r.Role, Status: domain.Status(r.Status)}
}

func (h *UsersHandler) List(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, h.service.List(c.Request().Context()))
}

func (h *UsersHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload[domain.User](c)
	}
	env := h.service.Create(c.Request().Context(), req.toDomain())
	status := stdhttp.StatusOK
	if env.Success {
		status = stdhttp.StatusCreated
	}
	return c.JSON(status, env)
}

func (h *UsersHandler) Update(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload[domain.User](c)
	}
	env := h.service.Update(c.Request().Context(), parseID(c), req.toDomain())
	return c.JSON(stdhttp.StatusOK, env)
}

func (h *UsersHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	if !h.confirmer.Confirm(ctx, "delete user") {
		return c.JSON(stdhttp.StatusPreconditionRequired, domain.Fail[domain.Deleted]("Deletion requires confirmation"))
	}
	return c.JSON(stdhttp.StatusOK, h.service.Delete(ctx, parseID(c)))
}

type RolesHandler struct {
	service   *application.RoleService
	confirmer ports.Confirmer
}

func NewRolesHandler(service *application.RoleService, confirmer ports.Confirmer) *RolesHandler {
	return &RolesHandler{service: service, confirmer: confirmer}
}

type roleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

func (r roleRequest) toDomain() domain.Role {
	perms := make([]domain.Permission, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, domain.Permission(p))
	}
	return domain.Role{Name: r.Name, Permissions: perms}
}

func (h *RolesHandler) List(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, h.service.List(c.Request().Context()))
}

func (h *RolesHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload[domain.Role](c)
	}
	env := h.service.Create(c.Request().Context(), req.toDomain())
	status := stdhttp.StatusOK
	if env.Success {
		status = stdhttp.StatusCreated
	}
	return c.JSON(status, env)
}

func (h *RolesHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload[domain.Role](c)
	}
	env := h.service.Update(c.Request().Context(), parseID(c), req.toDomain())
	return c.JSON(stdhttp.StatusOK, env)
}

func (h *RolesHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	if !h.confirmer.Confirm(ctx, "delete role") {
		return c.JSON(stdhttp.StatusPreconditionRequired, domain.Fail[domain.Deleted]("Deletion requires confirmation"))
	}
	return c.JSON(stdhttp.StatusOK, h.service.Delete(ctx, parseID(c)))
}

func (h *RolesHandler) SetPermission(c echo.Context) error {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&req); err != nil {
		return invalidPayload[domain.Role](c)
	}
	perm := domain.Permission(c.Param("permission"))
	env := h.service.SetPermission(c.Request().Context(), parseID(c), perm, req.Enabled)
	return c.JSON(stdhttp.StatusOK, env)
}

// PermissionsHandler enumerates the static catalog for the permission matrix
// view.
type PermissionsHandler struct{}

func NewPermissionsHandler() *PermissionsHandler {
	return &PermissionsHandler{}
}

func (h *PermissionsHandler) List(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, domain.OK(domain.Catalog()))
}
