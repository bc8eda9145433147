package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

func newProtectedEcho(secret string) *echo.Echo {
	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/admin", func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, claims.Username)
	}, JWTMiddleware(secret), RequireRole(utils.RoleAdmin))
	return e
}

func serve(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTMiddleware(t *testing.T) {
	e := newProtectedEcho("s3cret")

	assert.Equal(t, http.StatusUnauthorized, serve(e, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer not-a-jwt").Code)

	token, err := utils.GenerateJWTToken("s3cret", "root", utils.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)
	rec := serve(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "root", rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	e := newProtectedEcho("s3cret")

	token, err := utils.GenerateJWTToken("s3cret", "visitor", "viewer", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, serve(e, "Bearer "+token).Code)
}
