package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/api/middleware"
	"github.com/labcel/storefront/internal/core/domain"
)

var (
	adminUser    = &domain.User{UserID: "user_admin", Email: "admin@labcel.mx", Name: "Admin", Role: domain.RoleAdmin}
	customerUser = &domain.User{UserID: "user_cust", Email: "ana@example.com", Name: "Ana", Role: domain.RoleCustomer}
)

// newContext builds an echo context with the storefront validator registered.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type fixedAuthenticator struct {
	user *domain.User
}

func (a fixedAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if a.user == nil {
		return nil, domain.ErrInvalidSession
	}
	return a.user, nil
}

// serveAs runs h behind OptionalAuth so user (nil for anonymous) is attached.
func serveAs(user *domain.User, h echo.HandlerFunc, c echo.Context) error {
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer test-token")
	return middleware.OptionalAuth(fixedAuthenticator{user: user})(h)(c)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	return resp
}
