package render

import (
	"strings"

	"resume-tailor/resume/model"
)

// TextMimeType is the content type of the plain-text export.
const TextMimeType = "text/plain; charset=utf-8"

// PlainText renders the document for the clipboard. Sections always use
// their literal titles; empty fields, entries and sections are left out.
func PlainText(doc model.Document) string {
	var blocks []string

	p := doc.Personal
	personal := nonEmpty(
		p.FullName,
		p.Title,
		joinNonEmpty(" | ", p.Email, p.Phone),
		joinNonEmpty(" | ", p.Location, p.Website),
	)
	if len(personal) > 0 {
		blocks = append(blocks, strings.Join(personal, "\n"))
	}

	if strings.TrimSpace(p.Summary) != "" {
		blocks = append(blocks, "Summary\n"+p.Summary)
	}

	var experience []string
	for _, e := range doc.Experience {
		if e.IsBlank() {
			continue
		}
		lines := nonEmpty(
			joinNonEmpty(" at ", e.Position, e.Company),
			joinNonEmpty(" - ", e.StartDate, e.EndLabel()),
			e.Description,
		)
		experience = append(experience, strings.Join(lines, "\n"))
	}
	if len(experience) > 0 {
		blocks = append(blocks, "Experience\n"+strings.Join(experience, "\n\n"))
	}

	var education []string
	for _, e := range doc.Education {
		if e.IsBlank() {
			continue
		}
		gpa := ""
		if e.GPA != "" {
			gpa = "GPA: " + e.GPA
		}
		lines := nonEmpty(
			joinNonEmpty(" in ", e.Degree, e.Field),
			e.Institution,
			joinNonEmpty(" - ", e.StartDate, e.EndDate),
			gpa,
		)
		education = append(education, strings.Join(lines, "\n"))
	}
	if len(education) > 0 {
		blocks = append(blocks, "Education\n"+strings.Join(education, "\n\n"))
	}

	if len(doc.Skills) > 0 {
		blocks = append(blocks, "Skills\n"+strings.Join(doc.Skills, ", "))
	}
	if len(doc.Achievements) > 0 {
		blocks = append(blocks, "Achievements\n"+strings.Join(doc.Achievements, "\n"))
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	return strings.Join(nonEmpty(values...), sep)
}
