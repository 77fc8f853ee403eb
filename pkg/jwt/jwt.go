package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload this API issues. The subject lives in the
// `id` field; verification only requires that field to be present.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Payload is the verified token payload as raw claims.
type Payload = jwt.MapClaims

// Manager handles JWT operations
type Manager struct {
	secret string
}

// NewManager creates new JWT manager
func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// Sign generates a signed token carrying the user id in the `id` claim.
// Issuance endpoints are out of scope for this service; Sign exists for
// operational tooling and tests.
func (m *Manager) Sign(userID string) (string, error) {
	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Verify is the credential-verification primitive behind the auth gate.
// It checks the signature against the secret and returns the payload.
// All failure modes (expired, malformed, bad signature) collapse into a
// single error; callers do not distinguish them.
func Verify(tokenString, secret string) (Payload, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Reject any non-HMAC signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
