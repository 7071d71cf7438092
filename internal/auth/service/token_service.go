package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	apperrors "github.com/allisson/piiguard/internal/errors"
)

// sessionClaims is the JWT payload: sub, iat, exp, jti and role.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService with HS256 JWTs.
type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*tokenService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a TokenService. An empty secret or non-positive ttl is a
// configuration error.
func NewTokenService(secret string, ttl time.Duration, opts ...TokenOption) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "token signing secret is empty")
	}
	if ttl <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "token ttl must be positive")
	}

	s := &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token valid from now until now + ttl.
func (s *tokenService) Issue(subject string, role authDomain.Role) (*authDomain.IssuedToken, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate token id")
	}

	// JWT times have second precision; report what the token actually carries.
	now := s.now().Truncate(time.Second)
	expiresAt := now.Add(s.ttl)

	claims := sessionClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.IssuedToken{
		ID:        id.String(),
		Token:     signed,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify parses and validates token.
func (s *tokenService) Verify(token string) (*authDomain.Principal, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrTokenInvalid
	}

	role, err := authDomain.ParseRole(claims.Role)
	if err != nil || claims.Subject == "" {
		return nil, authDomain.ErrTokenInvalid
	}

	return &authDomain.Principal{Subject: claims.Subject, Role: role}, nil
}
