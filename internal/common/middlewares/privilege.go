package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
)

// RequireRole memeriksa apakah klaim JWT memiliki role yang dibutuhkan.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return response.JSON(c, http.StatusUnauthorized, "Missing or invalid JWT claims", nil)
			}
			if claims.Role != role {
				return response.JSON(c, http.StatusForbidden, "You do not have access to this resource", nil)
			}
			return next(c)
		}
	}
}
