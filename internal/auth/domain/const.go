// Package domain defines authentication and authorization domain models.
// Access is role based: every session token carries exactly one Role and each
// route declares the set of roles it accepts.
package domain

import "fmt"

// Role is the closed set of roles a user may hold.
type Role string

const (
	// RoleAdmin may read and write every resource.
	RoleAdmin Role = "admin"

	// RoleUser may read resources.
	RoleUser Role = "user"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleUser}

// ReadRoles may call read-only endpoints.
var ReadRoles = []Role{RoleAdmin, RoleUser}

// WriteRoles may call mutating endpoints.
var WriteRoles = []Role{RoleAdmin}

// ParseRole converts s to a Role. Unknown values return ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidRole)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// In reports whether r is one of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
