package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/api/metrics"
	"github.com/labcel/storefront/internal/api/middleware"
	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

// CookieConfig controls the attributes of the session cookie.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// DevelopmentCookies returns cookie attributes for plain-http local use.
func DevelopmentCookies() CookieConfig {
	return CookieConfig{SameSite: http.SameSiteLaxMode, MaxAge: domain.SessionTTL}
}

// ProductionCookies returns cookie attributes for a cross-site HTTPS frontend.
func ProductionCookies() CookieConfig {
	return CookieConfig{Secure: true, SameSite: http.SameSiteNoneMode, MaxAge: domain.SessionTTL}
}

type AuthHandler struct {
	authService ports.AuthService
	cookies     CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

type sessionResponse struct {
	*domain.User
	SessionToken string `json:"session_token"`
}

// CreateSession exchanges an identity-provider session id for an application session.
//
// @Summary      Exchange an identity session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      sessionRequest  true  "Identity provider session id"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/session [post]
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	result, err := h.authService.Exchange(c.Request().Context(), req.SessionID)
	if err != nil {
		metrics.SessionExchangesTotal.WithLabelValues(exchangeResult(err)).Inc()
		return err
	}
	metrics.SessionExchangesTotal.WithLabelValues("ok").Inc()

	c.SetCookie(h.sessionCookie(result.Token, int(h.cookies.MaxAge.Seconds())))
	return c.JSON(http.StatusOK, sessionResponse{User: result.User, SessionToken: result.Token})
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout revokes the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "Sesión cerrada"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	}
}

func exchangeResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "rejected"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}
