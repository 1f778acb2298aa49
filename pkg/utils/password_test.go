package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	ok, err := VerifyPassword("not-the-secret", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	_, err := VerifyPassword("secret", "plaintext")
	assert.Error(t, err)

	_, err = VerifyPassword("secret", "$bcrypt$something$else$entirely$here")
	assert.Error(t, err)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
