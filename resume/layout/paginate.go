package layout

import (
	"fmt"
	"strings"

	"resume-tailor/resume/model"
	"resume-tailor/resume/template"
)

const (
	placeholderName  = "Your Name"
	placeholderTitle = "Professional Title"
)

var black = template.RGB{}

// Paginate lays the document out on A4 pages.
func Paginate(doc model.Document, style template.Style, m Measurer) Document {
	return PaginateWith(A4(), doc, style, m)
}

// PaginateWith lays the document out using the given geometry.
func PaginateWith(g Geometry, doc model.Document, style template.Style, m Measurer) Document {
	family := style.FontFamily
	if !m.HasFamily(family) {
		family = style.FallbackFamily
	}
	c := &cursor{
		g:      g,
		m:      m,
		family: family,
		y:      g.Margin,
		pages:  []Page{{}},
	}

	p := doc.Personal
	c.text(orDefault(p.FullName, placeholderName), Bold, nameSize, style.PersonalColor)
	c.text(orDefault(p.Title, placeholderTitle), Italic, titleSize, style.PersonalColor)
	c.y += titleGap
	c.text(ContactLine(p), Regular, bodySize, black)

	if p.Summary != "" {
		c.section(style, template.SectionSummary)
		c.text(p.Summary, Regular, bodySize, black)
	}

	if len(doc.Experience) > 0 {
		c.section(style, template.SectionExperience)
		for _, e := range doc.Experience {
			c.text(fmt.Sprintf("%s at %s", e.Position, e.Company), Bold, headingSize, black)
			c.text(fmt.Sprintf("%s - %s", e.StartDate, e.EndLabel()), Italic, bodySize, black)
			if e.Description != "" {
				c.text(e.Description, Regular, bodySize, black)
			}
			c.y += entryGap
		}
	}

	if len(doc.Education) > 0 {
		c.section(style, template.SectionEducation)
		for _, e := range doc.Education {
			c.text(fmt.Sprintf("%s in %s", e.Degree, e.Field), Bold, headingSize, black)
			institution := e.Institution
			if e.GPA != "" {
				institution += " | GPA: " + e.GPA
			}
			c.text(institution, Regular, bodySize, black)
			c.text(fmt.Sprintf("%s - %s", e.StartDate, e.EndDate), Italic, bodySize, black)
			c.y += entryGap
		}
	}

	if len(doc.Skills) > 0 {
		c.section(style, template.SectionSkills)
		c.text(strings.Join(doc.Skills, ", "), Regular, bodySize, black)
	}

	if len(doc.Achievements) > 0 {
		c.section(style, template.SectionAchievements)
		for _, a := range doc.Achievements {
			c.text("• "+a, Regular, bodySize, black)
			c.y += entryGap
		}
	}

	return Document{Geometry: g, Family: family, Pages: c.pages}
}

// ContactLine joins the populated contact fields with " | ".
func ContactLine(p model.Personal) string {
	var parts []string
	for _, f := range []struct{ label, value string }{
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Location", p.Location},
		{"Website", p.Website},
	} {
		if f.value != "" {
			parts = append(parts, f.label+": "+f.value)
		}
	}
	return strings.Join(parts, " | ")
}

type cursor struct {
	g      Geometry
	m      Measurer
	family string
	y      float64
	pages  []Page
}

func (c *cursor) page() *Page {
	return &c.pages[len(c.pages)-1]
}

func (c *cursor) text(s, fontStyle string, size float64, color template.RGB) {
	font := Font{Family: c.family, Style: fontStyle, Size: size}
	measure := func(candidate string) float64 { return c.m.TextWidth(font, candidate) }
	for _, line := range Wrap(s, c.g.UsableWidth(), measure) {
		if c.y+c.g.LineHeight > c.g.PageHeight-c.g.Margin {
			c.pages = append(c.pages, Page{})
			c.y = c.g.Margin
		}
		pg := c.page()
		pg.Lines = append(pg.Lines, Line{X: c.g.Margin, Y: c.y, Text: line, Font: font, Color: color})
		c.y += c.g.LineHeight
	}
}

// section emits a header. The header, its gap and rule and one body line
// are kept together on the same page.
func (c *cursor) section(style template.Style, section template.Section) {
	c.y += sectionGap
	block := c.g.LineHeight + headerGap + c.g.LineHeight
	if style.HeaderRule {
		block += ruleGap
	}
	if c.y+block > c.g.PageHeight-c.g.Margin {
		c.pages = append(c.pages, Page{})
		c.y = c.g.Margin
	}
	c.text(strings.ToUpper(style.Title(section)), Bold, headerSize, style.Accent)
	c.y += headerGap
	if style.HeaderRule {
		pg := c.page()
		pg.Rules = append(pg.Rules, Rule{X1: c.g.Margin, X2: ruleRightX, Y: c.y, Width: ruleWidth})
		c.y += ruleGap
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
