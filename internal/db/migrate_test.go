package db

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tokens are case-sensitive base64url, so their columns must compare bytes
// exactly rather than inherit the table's case-insensitive collation.
func TestUsersMigration_TokenColumnsAreBinary(t *testing.T) {
	schema, err := fs.ReadFile(migrations, migrationsDir+"/00001_create_users.sql")
	require.NoError(t, err)

	for _, column := range []string{"email_verification_token", "consumed_token_hash"} {
		re := regexp.MustCompile(`(?m)^\s*` + column + `\s+[A-Z]+\(\d+\)\s+CHARACTER SET ascii COLLATE ascii_bin\b`)
		assert.Regexp(t, re, string(schema), column)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_create_users.sql", entries[0].Name())
}
