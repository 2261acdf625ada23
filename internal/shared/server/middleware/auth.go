package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/auth"
	"resume-tailor/internal/shared/server/respond"
)

const (
	userIDKey     = "userId"
	userEmailKey  = "userEmail"
	hasSessionKey = "hasSession"
)

// SessionCookie carries the signed session token.
const SessionCookie = "rt_session"

// TokenVerifier validates signed tokens.
type TokenVerifier interface {
	Verify(token string, purpose auth.Purpose) (auth.Claims, error)
}

// Session resolves the caller's identity from the session cookie or a bearer
// token. It never rejects: requests without a valid token simply have no
// session. Use RequireSession or PageGate to enforce.
func Session(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		if token != "" {
			if claims, err := verifier.Verify(token, auth.PurposeSession); err == nil {
				c.Set(userIDKey, claims.Subject)
				c.Set(userEmailKey, claims.Email)
				c.Set(hasSessionKey, true)
			}
		}
		c.Next()
	}
}

// RequireSession answers 401 for API calls without a session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if !HasSession(c) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid session", nil)
			return
		}
		c.Next()
	}
}

// HasSession reports whether Session resolved an identity.
func HasSession(c *gin.Context) bool {
	if c == nil {
		return false
	}
	return c.GetBool(hasSessionKey)
}

// UserIDFromContext fetches the user ID set by the session middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}

// UserEmailFromContext fetches the user email set by the session middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userEmailKey)
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
