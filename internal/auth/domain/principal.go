package domain

import "time"

// Principal is the verified identity carried by a session token.
type Principal struct {
	Subject string
	Role    Role
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	ID        string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// LoginOutput is returned by a successful login.
type LoginOutput struct {
	Principal Principal
	Token     IssuedToken
}
