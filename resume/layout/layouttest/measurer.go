// Package layouttest provides deterministic measurers for layout tests.
package layouttest

import (
	"unicode/utf8"

	"resume-tailor/resume/layout"
)

// FixedWidth measures every rune as CharWidth millimetres regardless of font.
// Families lists the drawable families; an empty list accepts any family.
type FixedWidth struct {
	CharWidth float64
	Families  []string
}

func (f FixedWidth) TextWidth(_ layout.Font, text string) float64 {
	return float64(utf8.RuneCountInString(text)) * f.CharWidth
}

func (f FixedWidth) HasFamily(family string) bool {
	if len(f.Families) == 0 {
		return true
	}
	for _, fam := range f.Families {
		if fam == family {
			return true
		}
	}
	return false
}
