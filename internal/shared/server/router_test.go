package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	sharedauth "resume-tailor/internal/shared/auth"
	"resume-tailor/internal/shared/config"
)

func TestAddr(t *testing.T) {
	tests := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range tests {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRateGroupFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	seen := map[string]string{}
	record := func(c *gin.Context) { seen[c.Request.URL.Path] = rateGroupFor(c) }
	r.POST("/api/v1/ai/tailor", record)
	r.POST("/api/v1/auth/magic-link", record)
	r.POST("/api/v1/editor/events", record)

	for _, path := range []string{"/api/v1/ai/tailor", "/api/v1/auth/magic-link", "/api/v1/editor/events"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, path, nil))
	}
	if seen["/api/v1/ai/tailor"] != rateGroupAI || seen["/api/v1/auth/magic-link"] != rateGroupMagicLink || seen["/api/v1/editor/events"] != "" {
		t.Fatalf("unexpected groups %v", seen)
	}
}

func TestHealthzWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer, err := sharedauth.NewIssuer("router-secret", "test")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	r := NewRouter(RouterDeps{Config: config.Config{Env: "dev"}, Issuer: issuer})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/editor/document", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected editor routes to be absent without a handler, got %d", resp.Code)
	}
}
