package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2id_HashAndCheck(t *testing.T) {
	h := NewArgon2id("pepper").Cheapest()

	hashed, err := h.Hash("mUc3m00RsqyRe")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(hashed), "$argon2id$v=19$m=16,t=1,p=2$"))

	ok, err := h.Check(string(hashed), "mUc3m00RsqyRe")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Check(string(hashed), "notright")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2id_SaltedHashesDiffer(t *testing.T) {
	h := NewArgon2id("").Cheapest()

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
	assert.True(t, h.Verify(string(first), "same"))
	assert.True(t, h.Verify(string(second), "same"))
}

func TestArgon2id_Malformed(t *testing.T) {
	h := NewArgon2id("")

	tests := []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=16,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=16,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=16,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=16,t=1,p=1$c2FsdA$",
	}
	for _, hashed := range tests {
		ok, err := h.Check(hashed, "x")
		assert.ErrorIs(t, err, ErrMalformedHash, hashed)
		assert.False(t, ok)
		assert.True(t, h.NeedsRehash(hashed))
	}
}

func TestArgon2id_NeedsRehash(t *testing.T) {
	h := NewArgon2id("")
	cheap := h.Cheapest()

	hashed, err := cheap.Hash("secret")
	require.NoError(t, err)

	assert.True(t, h.NeedsRehash(string(hashed)))
	assert.False(t, cheap.(Tunable).NeedsRehash(string(hashed)))
	assert.True(t, h.Verify(string(hashed), "secret"))
}

func TestArgon2id_MaxInput(t *testing.T) {
	h := NewArgon2id("pepper")
	assert.Equal(t, NoInputLimit, h.MaxInput())

	long := strings.Repeat("a", 4*MaxBcryptInputBytes)
	hashed, err := h.Cheapest().Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(string(hashed), long))
}
