package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthUser is the decoded identity attached to authenticated requests.
type AuthUser struct {
	UID   string
	Email string
}

// TokenVerifier delegates bearer-token verification to the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*AuthUser, error)
}

const userKey = "authUser"

// RequireAuth rejects requests without a verifiable bearer token and attaches
// the decoded identity to the gin context for handlers downstream.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity set by RequireAuth.
func CurrentUser(c *gin.Context) (*AuthUser, bool) {
	val, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*AuthUser)
	return user, ok
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
