package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// LoginPath is the only page reachable without a session.
	LoginPath = "/login"
	// HomePath is where signed-in visitors of the login page are sent.
	HomePath = "/dashboard"
)

// GatedPaths are the page routes the gate applies to.
var GatedPaths = []string{"/dashboard", "/resume-builder", "/ai-summary", "/final-resume", "/login"}

// IsAuthPage reports whether path belongs to the login flow.
func IsAuthPage(path string) bool {
	return strings.HasPrefix(path, LoginPath)
}

// GateDecision is the outcome of the page gate.
type GateDecision int

const (
	GatePass GateDecision = iota
	GateToLogin
	GateToHome
)

// Decide applies the three-branch rule: no session outside the login page
// goes to login, a session on the login page goes home, anything else passes.
func Decide(hasSession bool, path string) GateDecision {
	authPage := IsAuthPage(path)
	switch {
	case !hasSession && !authPage:
		return GateToLogin
	case hasSession && authPage:
		return GateToHome
	default:
		return GatePass
	}
}

// PageGate redirects page requests according to Decide. It must run after
// Session.
func PageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Decide(HasSession(c), c.Request.URL.Path) {
		case GateToLogin:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		case GateToHome:
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
