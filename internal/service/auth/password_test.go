package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hashed, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2"))

	assert.NoError(t, verifier.Compare(hashed, "secret-password"))
	assert.Error(t, verifier.Compare(hashed, "wrong-password"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
