package entity

import (
	"testing"
	"time"

	"github.com/shandysiswandi/secureprop/internal/pkg/hash"
	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passwordDefinition(t *testing.T) *secureprop.Definition {
	t.Helper()

	def, err := secureprop.Define(PropPassword, hash.NewBcrypt(0, ""), secureprop.WithMinCost(true))
	require.NoError(t, err)
	return def
}

func TestNewAccount(t *testing.T) {
	def := passwordDefinition(t)

	acc := NewAccount(def)
	require.NotNil(t, acc.Password())
	assert.False(t, acc.Password().HasDigest())
	assert.Equal(t, []string{PropPassword}, acc.Names())
	assert.Equal(t, "password_digest", def.DigestColumn())

	require.NoError(t, acc.Password().Set("mUc3m00RsqyRe"))
	row := acc.Row()
	require.NotNil(t, row.PasswordDigest)
	assert.True(t, acc.Authenticate(PropPassword, "mUc3m00RsqyRe"))
}

func TestAccountFromRow(t *testing.T) {
	def := passwordDefinition(t)

	src := NewAccount(def)
	require.NoError(t, src.Password().Set("secret"))
	digest := src.Password().Digest()

	now := time.Now()
	acc := AccountFromRow(&AccountRow{
		ID:             1,
		Email:          "a@b.test",
		FullName:       "A B",
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, def)

	assert.Equal(t, int64(1), acc.ID)
	assert.False(t, acc.Dirty())
	assert.True(t, acc.Password().Verify("secret"))
	assert.False(t, acc.Password().Verify("wrong"))

	empty := AccountFromRow(&AccountRow{ID: 2}, def)
	assert.False(t, empty.Password().HasDigest())
	assert.Nil(t, empty.Row().PasswordDigest)
}

func TestAccount_PasswordMissing(t *testing.T) {
	acc := &Account{}
	assert.Nil(t, acc.Password())
	assert.Nil(t, acc.Row().PasswordDigest)
}
