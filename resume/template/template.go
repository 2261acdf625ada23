// Package template holds the closed set of visual styles a resume can be
// rendered with.
package template

import "strings"

// ID identifies a template.
type ID string

const (
	Modern    ID = "modern"
	Corporate ID = "corporate"
	Creative  ID = "creative"
)

// Default is used when a session has not picked a template yet.
const Default = Modern

// Section identifies a resume section for title lookup.
type Section string

const (
	SectionSummary      Section = "Summary"
	SectionExperience   Section = "Experience"
	SectionEducation    Section = "Education"
	SectionSkills       Section = "Skills"
	SectionAchievements Section = "Achievements"
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B int
}

var black = RGB{0, 0, 0}

// Style is everything the layout needs to know about a template.
type Style struct {
	ID             ID
	Name           string
	Description    string
	FontFamily     string
	FallbackFamily string
	Accent         RGB
	PersonalColor  RGB
	HeaderRule     bool
	Titles         map[Section]string
}

// Title returns the display title for a section, falling back to the
// section's literal name.
func (s Style) Title(section Section) string {
	if t, ok := s.Titles[section]; ok {
		return t
	}
	return string(section)
}

var styles = map[ID]Style{
	Modern: {
		ID:             Modern,
		Name:           "Modern",
		Description:    "Clean sans-serif layout with blue section headers.",
		FontFamily:     "helvetica",
		FallbackFamily: "helvetica",
		Accent:         RGB{0, 102, 204},
		PersonalColor:  black,
	},
	Corporate: {
		ID:             Corporate,
		Name:           "Corporate",
		Description:    "Serif type with ruled section headers.",
		FontFamily:     "times",
		FallbackFamily: "times",
		Accent:         black,
		PersonalColor:  black,
		HeaderRule:     true,
	},
	Creative: {
		ID:             Creative,
		Name:           "Creative",
		Description:    "Playful pink accents and friendlier section titles.",
		FontFamily:     "comic",
		FallbackFamily: "helvetica",
		Accent:         RGB{255, 105, 180},
		PersonalColor:  RGB{255, 105, 180},
		Titles: map[Section]string{
			SectionSummary:      "My Story",
			SectionExperience:   "Adventures",
			SectionEducation:    "Learning Journey",
			SectionSkills:       "Superpowers",
			SectionAchievements: "Trophies",
		},
	},
}

// All lists the templates in display order.
func All() []Style {
	return []Style{styles[Modern], styles[Corporate], styles[Creative]}
}

// Parse maps user input onto a known ID. It is case-insensitive.
func Parse(raw string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := styles[id]
	return id, ok
}

// Lookup returns the style for id. Unknown IDs get the default template so
// rendering can always proceed; input is checked with Parse at the boundary.
func Lookup(id ID) Style {
	if s, ok := styles[id]; ok {
		return s
	}
	return styles[Default]
}
