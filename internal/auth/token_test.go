package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offline-ticketing/ticketing-service/internal/domain"
)

func testUser(role domain.Role) *domain.User {
	return &domain.User{
		ID:       "eeba8aae-f6b8-46c9-99cc-05446790868f",
		FullName: "Admin User",
		Email:    "admin@test.com",
		Role:     role,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	user := testUser(domain.RoleAdmin)

	token, exp, err := tm.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.False(t, claims.IssuedAt.IsZero())
}

func TestParseTokenRolePreserved(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleEmployee} {
		token, _, err := tm.GenerateToken(testUser(role))
		require.NoError(t, err)

		claims, err := tm.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken(testUser(domain.RoleEmployee))
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	claims := &Claims{
		Role: domain.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "2f6f2733-0745-4fe7-9291-91d6c3bc8e39",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenUnknownRoleClaim(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "2f6f2733-0745-4fe7-9291-91d6c3bc8e39",
		"role": "SUPERVISOR",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseTokenMissingSubject(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": string(domain.RoleAdmin),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)

	_, err := tm.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
