package auth

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_GenerateSalt(t *testing.T) {
	h := NewBcryptHasher(10)
	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	for i := 0; i < 5; i++ {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)
		assert.Regexp(t, hexRe, salt, "salt should be 64 hex characters")
	}
}

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(10)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	password := "titkos-jelszo-2026"

	hash, err := h.Hash(salt, password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	err = h.Compare(hash, salt, password)
	require.NoError(t, err)
}

func TestBcryptHasher_Compare_wrong_password(t *testing.T) {
	h := NewBcryptHasher(10)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	hash, err := h.Hash(salt, "correct")
	require.NoError(t, err)

	err = h.Compare(hash, salt, "wrong")
	assert.Error(t, err)
}

func TestBcryptHasher_LowCostFallsBackToDefault(t *testing.T) {
	h := NewBcryptHasher(0).(*bcryptHasher)
	assert.Equal(t, DefaultBcryptCost, h.cost)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	long := strings.Repeat("jelszó", 30)

	hash, err := h.Hash(salt, long)
	require.NoError(t, err)
	require.NoError(t, h.Compare(hash, salt, long))
	assert.Error(t, h.Compare(hash, salt, long[:len(long)-1]))
}

func TestBcryptHasher_Compare_wrong_salt(t *testing.T) {
	h := NewBcryptHasher(10)
	salt1, _ := h.GenerateSalt()
	salt2, _ := h.GenerateSalt()
	hash, err := h.Hash(salt1, "password")
	require.NoError(t, err)

	err = h.Compare(hash, salt2, "password")
	assert.Error(t, err)
}
