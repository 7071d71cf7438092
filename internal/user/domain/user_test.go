package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
)

func TestUserPatch_IsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	hash := "h"
	assert.False(t, UserPatch{PasswordHash: &hash}.IsEmpty())

	role := authDomain.RoleAdmin
	assert.False(t, UserPatch{Role: &role}.IsEmpty())
}
