package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"u1", false},
		{"019300c2-7b9e-7c8a-9e5f-2b1a4c3d5e6f", false},
		{"user.name_01", false},
		{"has space", true},
		{"semi;colon", true},
		{string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validation.Validate(tt.value, Identifier)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRole(t *testing.T) {
	assert.NoError(t, validation.Validate("admin", Role))
	assert.NoError(t, validation.Validate("user", Role))
	assert.NoError(t, validation.Validate("", Role))
	assert.Error(t, validation.Validate("root", Role))
	assert.Error(t, validation.Validate(42, Role))
}

func TestRole_Pointer(t *testing.T) {
	var missing *string
	admin := "admin"
	bad := "owner"

	assert.NoError(t, validation.Validate(missing, Role))
	assert.NoError(t, validation.Validate(&admin, Role))
	assert.Error(t, validation.Validate(&bad, Role))
}
