package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "pepper")

	hashed, err := h.Hash("mUc3m00RsqyRe")
	require.NoError(t, err)
	assert.NotEqual(t, "mUc3m00RsqyRe", string(hashed))

	assert.True(t, h.Verify(string(hashed), "mUc3m00RsqyRe"))
	assert.False(t, h.Verify(string(hashed), "notright"))

	// a different pepper is a different secret
	assert.False(t, NewBcrypt(bcrypt.MinCost, "other").Verify(string(hashed), "mUc3m00RsqyRe"))
}

func TestBcrypt_Check(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	hashed, err := h.Hash("secret")
	require.NoError(t, err)

	ok, err := h.Check(string(hashed), "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Check(string(hashed), "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	for _, bad := range []string{"", "not-a-hash", "$2a$04$short"} {
		ok, err = h.Check(bad, "secret")
		assert.ErrorIs(t, err, ErrMalformedHash, bad)
		assert.False(t, ok)
		assert.False(t, h.Verify(bad, "secret"))
	}
}

func TestBcrypt_TooLong(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	_, err := h.Hash(strings.Repeat("a", MaxBcryptInputBytes))
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", MaxBcryptInputBytes+1))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestBcrypt_MaxInputCountsPepper(t *testing.T) {
	assert.Equal(t, MaxBcryptInputBytes, NewBcrypt(bcrypt.MinCost, "").MaxInput())

	h := NewBcrypt(bcrypt.MinCost, "pepper")
	require.Equal(t, MaxBcryptInputBytes-6, h.MaxInput())

	hashed, err := h.Hash(strings.Repeat("a", h.MaxInput()))
	require.NoError(t, err)
	assert.True(t, h.Verify(string(hashed), strings.Repeat("a", h.MaxInput())))

	_, err = h.Hash(strings.Repeat("a", h.MaxInput()+1))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestBcrypt_CheapestAndRehash(t *testing.T) {
	h := NewBcrypt(0, "pep")
	assert.Equal(t, bcrypt.DefaultCost, h.Cost())

	cheap, ok := h.Cheapest().(*Bcrypt)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, cheap.Cost())

	hashed, err := cheap.Hash("secret")
	require.NoError(t, err)

	assert.True(t, h.Verify(string(hashed), "secret"))
	assert.True(t, h.NeedsRehash(string(hashed)))
	assert.False(t, cheap.NeedsRehash(string(hashed)))
	assert.True(t, cheap.NeedsRehash("garbage"))
}
