// Package pages serves the HTML shells of the browser client. All state
// lives behind the JSON API; these pages only carry the session gate.
package pages

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page describes one HTML route.
type Page struct {
	Name    string
	Path    string
	Title   string
	Heading string
	Nav     bool
}

// All lists the gated pages in navigation order.
var All = []Page{
	{Name: "login", Path: middleware.LoginPath, Title: "Sign in", Heading: "Sign in with a magic link"},
	{Name: "dashboard", Path: "/dashboard", Title: "Dashboard", Heading: "Welcome back", Nav: true},
	{Name: "resume-builder", Path: "/resume-builder", Title: "Resume Builder", Heading: "Resume Builder", Nav: true},
	{Name: "ai-summary", Path: "/ai-summary", Title: "AI Summary", Heading: "AI Summary", Nav: true},
	{Name: "final-resume", Path: "/final-resume", Title: "Final Resume", Heading: "Final Resume", Nav: true},
}

var loginNotices = map[string]string{
	"invalid_link": "That sign-in link is invalid or has expired. Request a new one.",
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Register mounts the pages behind the session gate. Session must already
// be installed on r.
func Register(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())

	gated := r.Group("/", middleware.PageGate())
	gated.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, middleware.HomePath)
	})
	for _, page := range All {
		page := page
		gated.GET(page.Path, func(c *gin.Context) {
			c.Header("Cache-Control", "no-store")
			c.HTML(http.StatusOK, "layout", gin.H{
				"Name":    page.Name,
				"Title":   page.Title,
				"Heading": page.Heading,
				"Nav":     page.Nav,
				"Notice":  loginNotices[c.Query("error")],
			})
		})
	}
}
