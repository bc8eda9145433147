package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Nour60555/Graduation-Project-KDD/internal/common/response"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

// Definisikan tipe kustom untuk context key
type contextKey string

const ContextKeyClaims contextKey = "claims"

// JWTMiddleware memvalidasi header "Authorization: Bearer <token>" dan menyimpan klaim ke context.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return response.JSON(c, http.StatusUnauthorized, "Authorization header missing", nil)
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return response.JSON(c, http.StatusUnauthorized, "Invalid authorization header", nil)
			}
			claims, err := utils.ValidateJWTToken(secret, parts[1])
			if err != nil {
				return response.JSON(c, http.StatusUnauthorized, "Invalid token: "+err.Error(), nil)
			}

			c.Set(string(ContextKeyClaims), claims)
			return next(c)
		}
	}
}

// ClaimsFrom mengambil klaim yang disimpan JWTMiddleware.
func ClaimsFrom(c echo.Context) (*utils.Claims, bool) {
	claims, ok := c.Get(string(ContextKeyClaims)).(*utils.Claims)
	return claims, ok && claims != nil
}
