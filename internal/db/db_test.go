package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/vibe-gaming/registration/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateEntry(t *testing.T) {
	dup := &mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry 'a@b.c' for key 'users.email'"}

	assert.True(t, IsDuplicateEntry(dup))
	assert.True(t, IsDuplicateEntry(fmt.Errorf("insert user: %w", dup)))
	assert.False(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1146}))
	assert.False(t, IsDuplicateEntry(fmt.Errorf("boom")))
	assert.False(t, IsDuplicateEntry(nil))
}

func TestDSN(t *testing.T) {
	dsn, err := DSN(config.Database{
		Net:      "tcp",
		Server:   "db:3306",
		DBName:   "registration",
		User:     "app",
		Password: "secret",
		TimeZone: "UTC",
		Timeout:  2 * time.Second,
	})
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "registration", parsed.DBName)
	assert.Equal(t, "app", parsed.User)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, 2*time.Second, parsed.Timeout)
}

func TestDSN_BadTimeZone(t *testing.T) {
	_, err := DSN(config.Database{TimeZone: "Mars/Olympus"})
	assert.Error(t, err)
}
