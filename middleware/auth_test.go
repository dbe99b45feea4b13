package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	user *AuthUser
	err  error
}

func (s *stubVerifier) Verify(ctx context.Context, idToken string) (*AuthUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func protectedRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(verifier), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header - 401", func(t *testing.T) {
		r := protectedRouter(&stubVerifier{user: &AuthUser{Email: "a@x.com"}})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "unauthorized access")
	})

	t.Run("wrong scheme - 401", func(t *testing.T) {
		r := protectedRouter(&stubVerifier{user: &AuthUser{Email: "a@x.com"}})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("verification failure - 401", func(t *testing.T) {
		r := protectedRouter(&stubVerifier{err: errors.New("token expired")})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "unauthorized access")
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		r := protectedRouter(&stubVerifier{user: &AuthUser{UID: "u1", Email: "a@x.com"}})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "a@x.com")
	})
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"standard", "Bearer abc", "abc", true},
		{"case-insensitive scheme", "bearer abc", "abc", true},
		{"empty header", "", "", false},
		{"scheme only", "Bearer ", "", false},
		{"no scheme", "abc", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := extractBearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
