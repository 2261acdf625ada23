package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-tailor/resume/model"
)

func TestPlainTextFullDocument(t *testing.T) {
	doc := model.Document{
		Personal: model.Personal{
			FullName: "Ada Lovelace",
			Title:    "Analyst",
			Email:    "ada@example.com",
			Phone:    "555",
			Website:  "ada.dev",
			Summary:  "Mathematician.",
		},
		Experience: []model.Experience{
			{Company: "Engine Co", Position: "Programmer", StartDate: "1842", EndDate: "1843", Current: true, Description: "Note G."},
			{Company: "Royal Society", Position: "Fellow", StartDate: "1840", EndDate: "1841"},
		},
		Education: []model.Education{
			{Institution: "Home", Degree: "Tutoring", Field: "Maths", StartDate: "1830", EndDate: "1835", GPA: "4.0"},
		},
		Skills:       []string{"Maths", "Poetry"},
		Achievements: []string{"First program", "Translation"},
	}

	want := `Ada Lovelace
Analyst
ada@example.com | 555
ada.dev

Summary
Mathematician.

Experience
Programmer at Engine Co
1842 - Present
Note G.

Fellow at Royal Society
1840 - 1841

Education
Tutoring in Maths
Home
1830 - 1835
GPA: 4.0

Skills
Maths, Poetry

Achievements
First program
Translation
`
	assert.Equal(t, want, PlainText(doc))
}

func TestPlainTextOmitsEmptySections(t *testing.T) {
	assert.Equal(t, "", PlainText(model.Starter()))

	doc := model.Starter()
	doc.SetPersonal(model.FieldFullName, "Ada")
	doc.AddSkill("Go")
	assert.Equal(t, "Ada\n\nSkills\nGo\n", PlainText(doc))
}

func TestPlainTextCurrentWithoutOtherFields(t *testing.T) {
	doc := model.Document{Experience: []model.Experience{{Current: true}}}
	assert.Equal(t, "Experience\nPresent\n", PlainText(doc))
}

func TestPlainTextKeepsFreeTextVerbatim(t *testing.T) {
	doc := model.Document{
		Personal: model.Personal{Summary: "  Indented summary."},
		Experience: []model.Experience{
			{Position: "Engineer", Company: "Acme", Description: "\t- shipped the billing rewrite"},
			{Description: "   "},
		},
	}
	want := "Summary\n  Indented summary.\n\n" +
		"Experience\nEngineer at Acme\n\t- shipped the billing rewrite\n"
	assert.Equal(t, want, PlainText(doc))
}
