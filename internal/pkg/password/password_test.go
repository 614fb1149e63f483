package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", hash)

	ok, err := h.Verify("secret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyCorruptDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-hash", "$2a$04$short"} {
		ok, err := h.Verify("anything", digest)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrCorruptCredential, "digest %q", digest)
	}
}

func TestHashRejectsLongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxLength+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewHasherClampsCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).Cost)
	assert.Equal(t, DefaultCost, NewHasher(bcrypt.MaxCost+1).Cost)
	assert.Equal(t, 10, NewHasher(10).Cost)
}
