package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("p1")
	require.NoError(t, err)

	assert.NotEqual(t, "p1", hashed)
	assert.True(t, CheckPassword(hashed, "p1"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_PlainStoredValue(t *testing.T) {
	assert.False(t, CheckPassword("p1", "p1"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 80))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	hashed, err := HashPassword(strings.Repeat("x", 72))
	require.NoError(t, err)
	assert.True(t, CheckPassword(hashed, strings.Repeat("x", 72)))
}
