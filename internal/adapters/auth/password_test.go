package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare roundtrip", func(t *testing.T) {
		salt, err := hasher.GenerateSalt()
		require.NoError(t, err)
		require.Len(t, salt, 64)

		hash, err := hasher.Hash(salt, "correct horse battery staple")
		require.NoError(t, err)
		require.NoError(t, hasher.Compare(hash, salt, "correct horse battery staple"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		salt, err := hasher.GenerateSalt()
		require.NoError(t, err)
		hash, err := hasher.Hash(salt, "password1")
		require.NoError(t, err)
		require.Error(t, hasher.Compare(hash, salt, "password2"))
	})

	t.Run("wrong salt fails", func(t *testing.T) {
		salt1, err := hasher.GenerateSalt()
		require.NoError(t, err)
		salt2, err := hasher.GenerateSalt()
		require.NoError(t, err)
		require.NotEqual(t, salt1, salt2)

		hash, err := hasher.Hash(salt1, "password1")
		require.NoError(t, err)
		require.Error(t, hasher.Compare(hash, salt2, "password1"))
	})

	t.Run("long passwords are supported", func(t *testing.T) {
		salt, err := hasher.GenerateSalt()
		require.NoError(t, err)
		long := make([]byte, 200)
		for i := range long {
			long[i] = 'a'
		}
		hash, err := hasher.Hash(salt, string(long))
		require.NoError(t, err)
		require.NoError(t, hasher.Compare(hash, salt, string(long)))
	})
}
