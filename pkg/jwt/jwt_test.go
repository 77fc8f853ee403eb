package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSignAndVerify(t *testing.T) {
	token, err := NewManager(testSecret).Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := Verify(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", payload["id"])
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager(testSecret).Sign("user-123")
	require.NoError(t, err)

	_, err = Verify(token, "a-different-secret")
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify("definitely.not.a-token", testSecret)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		ID: "user-123",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.Error(t, err)
}

func TestVerifyRejectsNonHMACAlgorithm(t *testing.T) {
	// alg=none tokens must never verify
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"id": "user-123"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.Error(t, err)
}

func TestVerifyAcceptsTokenWithoutExpiry(t *testing.T) {
	// Tokens from older issuers carry only the id claim.
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"id": "legacy-user"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	payload, err := Verify(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "legacy-user", payload["id"])
}
