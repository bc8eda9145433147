package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	svc := NewAdminService("admin", hash(t, "s3cret"), "jwt-secret")
	fixed := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return fixed }

	token, exp, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(TokenTTL), exp)

	claims, err := utils.ValidateJWTToken("jwt-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, utils.RoleAdmin, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAdminService("admin", hash(t, "s3cret"), "jwt-secret")

	_, _, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	svc := NewAdminService("admin", "", "jwt-secret")
	assert.False(t, svc.Enabled())
	_, _, err := svc.Login("admin", "")
	assert.ErrorIs(t, err, ErrLoginDisabled)
}
