package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/pkg/jwt"
)

// UserIDKey is the context key the auth gate binds the caller identity to.
// Every handler behind the gate reads the authenticated user id from it.
const UserIDKey = "userId"

// TokenVerifier verifies a bearer token against the signing secret and
// returns the payload. The implementation is injected so the signature
// scheme stays replaceable; pkg/jwt.Verify is the production one.
type TokenVerifier func(token, secret string) (jwt.Payload, error)

// AuthMiddleware is the authentication gate in front of the blog resource.
//
// Contract (fixed, wire-compatible):
//   - missing/empty authorization header -> 401 {"message":"unauthorized"},
//     verification is never attempted
//   - header present but verification fails -> 403
//     {"message":"You are not logged in!"}
//   - success -> the payload's `id` field, coerced to a string, is bound
//     into the context under the userId key
//
// The 401/403 split carries no deeper meaning; it mirrors the existing
// clients' expectations and must not be "normalized".
func AuthMiddleware(jwtSecret string, verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the raw authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"message": "unauthorized"})
			c.Abort()
			return
		}

		// 2. The raw header value is the token; a conventional
		// "Bearer " prefix is tolerated and stripped.
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 3. Verify the credential
		payload, err := verify(token, jwtSecret)
		if err != nil {
			c.JSON(403, gin.H{"message": "You are not logged in!"})
			c.Abort()
			return
		}

		// 4. Extract the subject id and coerce it to a string.
		// A payload without a subject is not a usable credential.
		userID, ok := subjectID(payload)
		if !ok {
			c.JSON(403, gin.H{"message": "You are not logged in!"})
			c.Abort()
			return
		}

		// 5. Bind the caller identity into the request context
		c.Set(UserIDKey, userID)

		c.Next()
	}
}

// subjectID pulls the `id` claim out of a verified payload as a string.
// Numeric subjects are coerced; JSON numbers arrive as float64.
func subjectID(payload jwt.Payload) (string, bool) {
	raw, ok := payload["id"]
	if !ok || raw == nil {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%.0f", v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// GetUserID reads the caller identity the auth gate bound to the context.
// The second return is false only when the gate did not run, which means
// a route was registered outside the authenticated group by mistake.
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}

	userID, ok := v.(string)
	return userID, ok
}
