package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	first := HashPassword("password123")
	second := HashPassword("password123")

	assert.Equal(t, first, second)
}

func TestHashPassword_DiffersPerInput(t *testing.T) {
	assert.NotEqual(t, HashPassword("alpha"), HashPassword("bravo"))
}

func TestHashPassword_KnownVector(t *testing.T) {
	// sha256("abc") from FIPS 180-2 test vectors.
	got := HashPassword("abc")
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)
}

func TestHashPassword_EmptyInput(t *testing.T) {
	got := HashPassword("")
	require.Len(t, got, 64)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)
}
