package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	apperrors "github.com/allisson/piiguard/internal/errors"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestTokenService(t *testing.T, clock *fakeClock) TokenService {
	t.Helper()
	svc, err := NewTokenService("test-signing-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	t.Run("Error_EmptySecret", func(t *testing.T) {
		_, err := NewTokenService("", time.Hour)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("Error_NonPositiveTTL", func(t *testing.T) {
		_, err := NewTokenService("secret", 0)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}

func TestTokenService_IssueVerify(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)}
	svc := newTestTokenService(t, clock)

	issued, err := svc.Issue("user-42", authDomain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, time.Date(2026, 1, 2, 4, 4, 5, 0, time.UTC), issued.ExpiresAt)

	principal, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", principal.Subject)
	assert.Equal(t, authDomain.RoleAdmin, principal.Role)

	t.Run("ClaimsOnTheWire", func(t *testing.T) {
		claims := jwt.MapClaims{}
		_, _, err := jwt.NewParser().ParseUnverified(issued.Token, claims)
		require.NoError(t, err)
		assert.Equal(t, "user-42", claims["sub"])
		assert.Equal(t, "admin", claims["role"])
		assert.Equal(t, issued.ID, claims["jti"])
		assert.EqualValues(t, issued.IssuedAt.Unix(), claims["iat"])
		assert.EqualValues(t, issued.ExpiresAt.Unix(), claims["exp"])
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		other, err := svc.Issue("user-42", authDomain.RoleAdmin)
		require.NoError(t, err)
		assert.NotEqual(t, issued.ID, other.ID)
	})
}

func TestTokenService_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	svc := newTestTokenService(t, clock)

	issued, err := svc.Issue("user-1", authDomain.RoleUser)
	require.NoError(t, err)

	clock.t = issued.ExpiresAt.Add(-time.Second)
	_, err = svc.Verify(issued.Token)
	require.NoError(t, err)

	clock.t = issued.ExpiresAt.Add(time.Second)
	_, err = svc.Verify(issued.Token)
	assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(t, err, authDomain.ErrTokenInvalid)
}

func TestTokenService_Invalid(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	svc := newTestTokenService(t, clock)

	issued, err := svc.Issue("user-1", authDomain.RoleUser)
	require.NoError(t, err)
	parts := strings.Split(issued.Token, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[0] ^= 0x01
	tamperedSig := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(sig)

	otherSvc, err := NewTokenService("another-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	foreign, err := otherSvc.Issue("user-1", authDomain.RoleAdmin)
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(clock.t.Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"TamperedSignature", tamperedSig},
		{"TamperedPayloadRole", parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"role":"admin","sub":"user-1"}`)) + "." + parts[2]},
		{"ForeignSecret", foreign.Token},
		{"Malformed", "not-a-token"},
		{"Empty", ""},
		{"NoneAlgorithm", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": "x", "role": "admin", "exp": exp})},
		{"HS512", sign(jwt.SigningMethodHS512, []byte("test-signing-secret"), jwt.MapClaims{"sub": "x", "role": "admin", "exp": exp})},
		{"UnknownRole", sign(jwt.SigningMethodHS256, []byte("test-signing-secret"), jwt.MapClaims{"sub": "x", "role": "root", "exp": exp})},
		{"MissingSubject", sign(jwt.SigningMethodHS256, []byte("test-signing-secret"), jwt.MapClaims{"role": "admin", "exp": exp})},
		{"MissingExpiry", sign(jwt.SigningMethodHS256, []byte("test-signing-secret"), jwt.MapClaims{"sub": "x", "role": "admin"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := svc.Verify(tt.token)
			assert.Nil(t, principal)
			assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
		})
	}
}
