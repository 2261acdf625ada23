// Package layout turns a resume document and a template style into
// positioned draw instructions on fixed-size pages. It never fails; the
// renderer that replays the instructions is the only step that can.
package layout

import "resume-tailor/resume/template"

// Geometry describes the page in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	LineHeight float64
}

// A4 is portrait A4 with a 10mm margin and 7mm lines.
func A4() Geometry {
	return Geometry{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     10,
		LineHeight: 7,
	}
}

// UsableWidth is the wrapping width.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Vertical spacing, all in millimetres.
const (
	sectionGap  = 10
	titleGap    = 5
	headerGap   = 2
	ruleGap     = 5
	entryGap    = 5
	ruleWidth   = 0.5
	ruleRightX  = 200
	nameSize    = 20
	titleSize   = 12
	headerSize  = 14
	headingSize = 12
	bodySize    = 10
)

// Font styles understood by the renderer.
const (
	Regular = ""
	Bold    = "B"
	Italic  = "I"
)

// Font is a family/style/size triple.
type Font struct {
	Family string  `json:"family"`
	Style  string  `json:"style"`
	Size   float64 `json:"size"`
}

// Line is one positioned line of text. Y is the baseline.
type Line struct {
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Text  string       `json:"text"`
	Font  Font         `json:"font"`
	Color template.RGB `json:"color"`
}

// Rule is a horizontal stroke.
type Rule struct {
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// Page holds everything drawn on one page, in emission order.
type Page struct {
	Lines []Line `json:"lines"`
	Rules []Rule `json:"rules"`
}

// Document is the paginated result.
type Document struct {
	Geometry Geometry `json:"geometry"`
	Family   string   `json:"family"`
	Pages    []Page   `json:"pages"`
}

// Lines flattens every page's lines in order.
func (d Document) Lines() []Line {
	var out []Line
	for _, p := range d.Pages {
		out = append(out, p.Lines...)
	}
	return out
}

// Measurer reports text widths for the fonts the renderer will use and
// whether a font family can be drawn at all.
type Measurer interface {
	TextWidth(font Font, text string) float64
	HasFamily(family string) bool
}
