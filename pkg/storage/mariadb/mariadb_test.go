package mariadb

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nour60555/Graduation-Project-KDD/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(&config.Config{
		DBUser:     "kidney",
		DBPassword: "p@ss",
		DBHost:     "db.local",
		DBPort:     "3307",
		DBName:     "kidney_care",
	})

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "kidney", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "db.local:3307", parsed.Addr)
	assert.Equal(t, "kidney_care", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}
