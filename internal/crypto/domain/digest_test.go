package domain

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_String(t *testing.T) {
	d := Digest(sha256.Sum256([]byte("abc")))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", d.String())
}

func TestParseDigest(t *testing.T) {
	want := Digest(sha256.Sum256([]byte("abc")))

	t.Run("Success_Lowercase", func(t *testing.T) {
		got, err := ParseDigest(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Success_TrailingNewlineAndUppercase", func(t *testing.T) {
		got, err := ParseDigest("  " + strings.ToUpper(want.String()) + "\n")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Error_NotHex", func(t *testing.T) {
		_, err := ParseDigest("zz")
		assert.ErrorIs(t, err, ErrInvalidDigest)
	})

	t.Run("Error_WrongLength", func(t *testing.T) {
		_, err := ParseDigest("abcd")
		assert.ErrorIs(t, err, ErrInvalidDigest)
	})
}
