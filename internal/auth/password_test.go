package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, ComparePassword(hash, "secret123"))
	assert.Error(t, ComparePassword(hash, "secret124"))
}

func TestHashPasswordFreshSalt(t *testing.T) {
	first, err := HashPassword("secret123", 4)
	require.NoError(t, err)
	second, err := HashPassword("secret123", 4)
	require.NoError(t, err)

	// same plaintext, different salt, different hash
	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "secret123"))
	assert.NoError(t, ComparePassword(second, "secret123"))
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("secret123", 0)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "secret123"))
}
