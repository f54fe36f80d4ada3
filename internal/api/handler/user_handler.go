package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

// UserHandler serves the admin user-management routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	WhatsAppNumber *string `json:"whatsapp_number"`
	Role           *string `json:"role" validate:"omitempty,oneof=admin customer"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:user_id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     SessionCookie
// @Param        user_id  path      string  true  "User id"
// @Success      200      {object}  domain.User
// @Failure      404      {object}  errorResponse
// @Router       /users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:user_id. Only the fields present are written.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        user_id  path      string             true  "User id"
// @Param        body     body      updateUserRequest  true  "Fields to update"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /users/{user_id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), actor, c.Param("user_id"), domain.UserUpdate{
		Name:           req.Name,
		Phone:          req.Phone,
		WhatsAppNumber: req.WhatsAppNumber,
		Role:           req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangeRole handles PUT /users/:user_id/role. A missing role means customer.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        user_id  path      string             true  "User id"
// @Param        body     body      changeRoleRequest  true  "New role"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /users/{user_id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	if req.Role == "" {
		req.Role = domain.RoleCustomer
	}

	if err := h.service.ChangeRole(c.Request().Context(), actor, c.Param("user_id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Rol actualizado a %s", req.Role)})
}
