package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/api/handler"
	"github.com/labcel/storefront/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Detail string `json:"detail"`
}

// messages localizes the specific domain errors. Order matters only in that
// specific entries are checked before the category fallbacks below.
var messages = []struct {
	err error
	msg string
}{
	{domain.ErrInvalidSession, "Sesión inválida"},
	{domain.ErrAdminRequired, "Acceso denegado. Se requiere rol de administrador"},
	{domain.ErrOrderForbidden, "No tienes acceso a este pedido"},
	{domain.ErrUserNotFound, "Usuario no encontrado"},
	{domain.ErrOrderNotFound, "Pedido no encontrado"},
	{domain.ErrProductNotFound, "Producto no encontrado"},
	{domain.ErrImageNotFound, "Imagen no encontrada"},
	{domain.ErrMissingSessionID, "session_id requerido"},
	{domain.ErrEmptyUpdate, "No hay datos para actualizar"},
	{domain.ErrOwnRoleChange, "No puedes cambiar tu propio rol"},
	{domain.ErrInvalidRole, "Rol inválido"},
	{domain.ErrNotAnImage, "Solo se permiten imágenes"},
	{domain.ErrImageTooLarge, "La imagen no puede superar 5MB"},
	{domain.ErrEmptyCart, "El pedido no tiene productos"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and Spanish messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Error()
	}

	// Echo's own errors (404 from router, body limit, rate limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Int("status", he.Code).Str("path", c.Path()).Msg("http error")
		}
		switch he.Code {
		case http.StatusRequestEntityTooLarge:
			if c.Path() == uploadPath {
				return resolveError(domain.ErrImageTooLarge, log, c)
			}
			return he.Code, "Cuerpo de la petición demasiado grande"
		case http.StatusTooManyRequests:
			return he.Code, "Demasiadas solicitudes, intenta más tarde"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	code := statusFor(err)
	if code == http.StatusInternalServerError {
		// Unexpected error: log the real cause, return a generic message.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("unhandled error")
		return code, "Error interno del servidor"
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return code, m.msg
		}
	}
	return code, defaultMessage(code)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return "No autenticado"
	case http.StatusForbidden:
		return "Acceso denegado"
	case http.StatusNotFound:
		return "Recurso no encontrado"
	default:
		return "Solicitud inválida"
	}
}
