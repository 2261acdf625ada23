package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	sharedauth "resume-tailor/internal/shared/auth"
	"resume-tailor/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	issuer, err := sharedauth.NewIssuer("pages-secret", "test")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	token, _, err := issuer.Sign(sharedauth.PurposeSession, "user-1", "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	r := gin.New()
	r.Use(middleware.Session(issuer))
	Register(r)
	return r, token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPagesWithoutSessionRedirectToLogin(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/", "/dashboard", "/resume-builder", "/ai-summary", "/final-resume"} {
		resp := get(r, path, "")
		if resp.Code != http.StatusFound || resp.Header().Get("Location") != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %d %q", path, resp.Code, resp.Header().Get("Location"))
		}
	}
	resp := get(r, "/login", "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `id="magic-link"`) {
		t.Fatalf("expected login form, got %d", resp.Code)
	}
}

func TestLoginWithSessionRedirectsHome(t *testing.T) {
	r, token := newTestRouter(t)
	resp := get(r, "/login", token)
	if resp.Code != http.StatusFound || resp.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %q", resp.Code, resp.Header().Get("Location"))
	}
}

func TestGatedPagesRenderWithSession(t *testing.T) {
	r, token := newTestRouter(t)
	for _, page := range All[1:] {
		resp := get(r, page.Path, token)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", page.Path, resp.Code)
		}
		body := resp.Body.String()
		if !strings.Contains(body, `data-page="`+page.Name+`"`) || !strings.Contains(body, "Sign out") {
			t.Fatalf("%s: unexpected body", page.Path)
		}
	}
}

func TestLoginShowsInvalidLinkNotice(t *testing.T) {
	r, _ := newTestRouter(t)
	resp := get(r, "/login?error=invalid_link", "")
	if !strings.Contains(resp.Body.String(), "invalid or has expired") {
		t.Fatalf("expected invalid link notice")
	}
}
