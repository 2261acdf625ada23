package model

import "strings"

// Document is the resume being edited. It lives only inside an editor session.
type Document struct {
	Personal     Personal     `json:"personal"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Achievements []string     `json:"achievements"`
}

// Personal captures identity, contact details and the free-form summary.
type Personal struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

// Experience represents a work history entry. When Current is set the end
// date is kept but never displayed.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education represents an education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
}

// Starter returns the document a fresh form starts with: one blank
// experience entry and one blank education entry.
func Starter() Document {
	return Document{
		Experience:   []Experience{{}},
		Education:    []Education{{}},
		Skills:       []string{},
		Achievements: []string{},
	}
}

// Clone returns a deep copy so callers can hand out snapshots.
func (d Document) Clone() Document {
	return Document{
		Personal:     d.Personal,
		Experience:   cloneSlice(d.Experience),
		Education:    cloneSlice(d.Education),
		Skills:       cloneSlice(d.Skills),
		Achievements: cloneSlice(d.Achievements),
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// EndLabel is what gets displayed as the end of the employment range.
func (e Experience) EndLabel() string {
	if e.Current {
		return "Present"
	}
	return e.EndDate
}

// IsBlank reports whether no displayable field of the entry is populated.
func (e Experience) IsBlank() bool {
	return !e.Current && blank(e.Company, e.Position, e.StartDate, e.EndDate, e.Description)
}

// IsBlank reports whether every field of the entry is empty.
func (e Education) IsBlank() bool {
	return blank(e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate, e.GPA)
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
