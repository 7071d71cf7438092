package repository

import (
	"strings"

	"github.com/allisson/piiguard/internal/user/domain"
)

// buildUpdate renders the SET clause for patch. bind returns the placeholder for
// the n-th argument (1-based). The returned args end with the id placeholder value.
func buildUpdate(id string, patch domain.UserPatch, bind func(n int) string) (string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = "+bind(len(args)))
	}

	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.PasswordHash != nil {
		add("password_hash", *patch.PasswordHash)
	}
	if patch.Role != nil {
		add("role", patch.Role.String())
	}

	args = append(args, id)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + ", updated_at = NOW() WHERE id = " + bind(len(args))
	return query, args
}
