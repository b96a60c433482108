package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash")

	// Same password, fresh salt.
	hash2, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse", hash))
	assert.False(t, VerifyPassword("wrong horse", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.True(t, VerifyPasswordTimingSafe("pw1", &hash))
	assert.False(t, VerifyPasswordTimingSafe("pw2", &hash))

	// Unknown-user path: still returns false, never panics.
	assert.False(t, VerifyPasswordTimingSafe("pw1", nil))

	empty := ""
	assert.False(t, VerifyPasswordTimingSafe("pw1", &empty))
}
