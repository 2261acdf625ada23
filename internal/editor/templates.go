package editor

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/resume/template"
)

// TemplateResponse describes one selectable template.
type TemplateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Font        string `json:"font"`
	Accent      string `json:"accent"`
	Default     bool   `json:"default"`
}

// RegisterCatalog attaches the public template list.
func RegisterCatalog(rg *gin.RouterGroup) {
	rg.GET("/templates", listTemplates)
}

func listTemplates(c *gin.Context) {
	all := template.All()
	out := make([]TemplateResponse, 0, len(all))
	for _, s := range all {
		out = append(out, TemplateResponse{
			ID:          string(s.ID),
			Name:        s.Name,
			Description: s.Description,
			Font:        s.FontFamily,
			Accent:      fmt.Sprintf("#%02x%02x%02x", s.Accent.R, s.Accent.G, s.Accent.B),
			Default:     s.ID == template.Default,
		})
	}
	respond.OK(c, gin.H{"templates": out})
}
