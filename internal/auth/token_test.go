package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_RoundTrip(t *testing.T) {
	v := NewTokenVerifier("secret", "")
	userID := uuid.New()

	token, err := v.Sign(userID, "officer@example.com", time.Hour)
	require.NoError(t, err)

	identity, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "officer@example.com", identity.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenVerifier("secret", "").Sign(uuid.New(), "a@b.c", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenVerifier("other", "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	v := NewTokenVerifier("secret", "")
	token, err := v.Sign(uuid.New(), "a@b.c", -time.Hour)
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	token, err := NewTokenVerifier("secret", "https://other").Sign(uuid.New(), "a@b.c", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenVerifier("secret", "https://auth.local").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_NonUUIDSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenVerifier("secret", "").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenVerifier("secret", "").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
