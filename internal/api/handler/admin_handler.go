package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/core/ports"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	stats         ports.StatsService
	notifications ports.NotificationService
}

func NewAdminHandler(stats ports.StatsService, notifications ports.NotificationService) *AdminHandler {
	return &AdminHandler{stats: stats, notifications: notifications}
}

// Stats handles GET /admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.Stats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Notifications handles GET /admin/notifications?limit=. The service clamps the limit.
//
// @Summary      Recent notification log
// @Tags         admin
// @Produce      json
// @Security     SessionCookie
// @Param        limit  query     int  false  "Maximum entries (default 50, max 200)"
// @Success      200    {array}   domain.Notification
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /admin/notifications [get]
func (h *AdminHandler) Notifications(c echo.Context) error {
	// Zero lets the service apply its default.
	var limit int64
	if err := echo.QueryParamsBinder(c).Int64("limit", &limit).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	if c.QueryParam("limit") != "" && limit <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Parámetros de consulta inválidos")
	}

	list, err := h.notifications.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
