package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after RequireAuth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrAdminRequired
			}
			return next(c)
		}
	}
}

// RequireAdmin is RBAC restricted to the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin)
}
