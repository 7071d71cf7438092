package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordService(t *testing.T) {
	service := NewPasswordService()
	assert.NotNil(t, service)
	assert.IsType(t, &passwordService{}, service)
}

func TestPasswordService_Hash(t *testing.T) {
	service := NewPasswordService()

	t.Run("Success_Argon2idFormat", func(t *testing.T) {
		hashed, err := service.Hash("s3cure-Passw0rd")
		require.NoError(t, err)
		assert.Contains(t, hashed, "$argon2id$")
		assert.NotContains(t, hashed, "s3cure-Passw0rd")
	})

	t.Run("Success_FreshSaltPerCall", func(t *testing.T) {
		a, err := service.Hash("same")
		require.NoError(t, err)
		b, err := service.Hash("same")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.True(t, service.Verify("same", a))
		assert.True(t, service.Verify("same", b))
	})
}

func TestPasswordService_Verify(t *testing.T) {
	service := NewPasswordService()
	hashed, err := service.Hash("correct")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"Success_Match", "correct", hashed, true},
		{"Failure_WrongPassword", "incorrect", hashed, false},
		{"Failure_EmptyPassword", "", hashed, false},
		{"Failure_EmptyHash", "correct", "", false},
		{"Failure_MalformedHash", "correct", "$argon2id$garbage", false},
		{"Failure_UnknownScheme", "correct", "plaintext", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Verify(tt.password, tt.hash))
		})
	}
}

func TestPasswordService_LegacyBcrypt(t *testing.T) {
	service := NewPasswordService()
	legacy, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, service.Verify("legacy-pass", string(legacy)))
	assert.False(t, service.Verify("other", string(legacy)))
	assert.True(t, service.NeedsRehash(string(legacy)))

	modern, err := service.Hash("legacy-pass")
	require.NoError(t, err)
	assert.False(t, service.NeedsRehash(modern))
}
