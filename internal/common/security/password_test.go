package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotEqual(t, "p1", hash)

	require.True(t, CheckPasswordHash("p1", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("p1")
	require.NoError(t, err)
	second, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
