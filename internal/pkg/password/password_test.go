//go:build unit

package password_test

import (
	"testing"

	"geresaco/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := password.NewHasher(4)

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	require.NotEqual(t, "secreto123", hash)

	assert.NoError(t, hasher.Compare(hash, "secreto123"))
	assert.ErrorIs(t, hasher.Compare(hash, "otracosa"), password.ErrComparisonFailed)
}

func TestHashEmptyPassword(t *testing.T) {
	t.Parallel()

	hasher := password.NewHasher(4)

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	assert.ErrorIs(t, hasher.Compare("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, hasher.Compare("hash", ""), password.ErrInvalidPassword)
}

func TestNewHasherClampsCost(t *testing.T) {
	t.Parallel()

	// Out-of-range costs fall back to the default instead of failing later.
	hasher := password.NewHasher(99)
	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "secreto123"))
}
