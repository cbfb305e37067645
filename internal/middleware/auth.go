package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated user
const (
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	UserRoleContextKey  = "user_role"
	IsAdminContextKey   = "is_admin"
)

// RequireAuth validates the bearer token and stores the authenticated user's
// identity in the request context
func RequireAuth(authService services.AuthServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := GetTraceID(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				errorResponse := errors.NewErrorResponse(errors.AuthMissingToken, traceID)
				return c.JSON(http.StatusUnauthorized, errorResponse)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				errorResponse := errors.NewErrorResponse(errors.AuthInvalidTokenFormat, traceID)
				return c.JSON(http.StatusUnauthorized, errorResponse)
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				errorResponse := errors.NewErrorResponse(errors.AuthExpiredToken, traceID)
				return c.JSON(http.StatusUnauthorized, errorResponse)
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(UserEmailContextKey, claims.Email)
			c.Set(UserRoleContextKey, claims.Role)
			c.Set(IsAdminContextKey, claims.Role == models.RoleAdmin)

			return next(c)
		}
	}
}

// RequireRole restricts a route to users holding one of the given roles.
// Must run after RequireAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get(UserRoleContextKey).(string)
			if !ok {
				traceID := GetTraceID(c)
				errorResponse := errors.NewErrorResponse(errors.AuthMissingToken, traceID)
				return c.JSON(http.StatusUnauthorized, errorResponse)
			}

			for _, role := range roles {
				if userRole == role {
					return next(c)
				}
			}

			traceID := GetTraceID(c)
			errorResponse := errors.NewErrorResponse(errors.AuthInsufficientPermission, traceID)
			return c.JSON(http.StatusForbidden, errorResponse)
		}
	}
}

// RequireAdmin restricts a route to admin users. Must run after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
