package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/api/middleware"
	"github.com/labcel/storefront/internal/core/domain"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")

// requireUser returns the user injected by the auth middleware and fails fast
// when the route was mounted without it.
func requireUser(c echo.Context) (*domain.User, error) {
	u := middleware.CurrentUser(c)
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}
