package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
)

const claimsKey = "auth.claims"

// Middleware guards a route group with bearer-token authentication.
func Middleware(tm *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperror.Unauthorized("missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return apperror.Unauthorized("malformed authorization header")
			}

			claims, err := tm.VerifyToken(parts[1])
			if err != nil {
				return apperror.Forbidden("invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// GetClaims returns the verified claims for the request, or nil on
// unauthenticated routes.
func GetClaims(c echo.Context) *Claims {
	if claims, ok := c.Get(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}
