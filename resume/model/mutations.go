package model

import "strings"

// PersonalField names one editable field of the personal block.
type PersonalField string

const (
	FieldFullName PersonalField = "fullName"
	FieldTitle    PersonalField = "title"
	FieldEmail    PersonalField = "email"
	FieldPhone    PersonalField = "phone"
	FieldLocation PersonalField = "location"
	FieldWebsite  PersonalField = "website"
	FieldSummary  PersonalField = "summary"
)

// SetPersonal stores value verbatim. Unknown fields are ignored.
func (d *Document) SetPersonal(field PersonalField, value string) {
	switch field {
	case FieldFullName:
		d.Personal.FullName = value
	case FieldTitle:
		d.Personal.Title = value
	case FieldEmail:
		d.Personal.Email = value
	case FieldPhone:
		d.Personal.Phone = value
	case FieldLocation:
		d.Personal.Location = value
	case FieldWebsite:
		d.Personal.Website = value
	case FieldSummary:
		d.Personal.Summary = value
	}
}

// AddExperience appends a blank entry and returns its index.
func (d *Document) AddExperience() int {
	d.Experience = append(d.Experience, Experience{})
	return len(d.Experience) - 1
}

// UpdateExperience replaces the entry at index. Out-of-range is a no-op.
func (d *Document) UpdateExperience(index int, entry Experience) {
	if index < 0 || index >= len(d.Experience) {
		return
	}
	d.Experience[index] = entry
}

// SetExperienceField sets one string field of the entry at index.
// Field names match the JSON names (company, position, startDate, endDate,
// description).
func (d *Document) SetExperienceField(index int, field, value string) {
	if index < 0 || index >= len(d.Experience) {
		return
	}
	e := &d.Experience[index]
	switch field {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	}
}

// SetExperienceCurrent toggles the "currently working here" flag. The
// stored end date is left untouched either way.
func (d *Document) SetExperienceCurrent(index int, current bool) {
	if index < 0 || index >= len(d.Experience) {
		return
	}
	d.Experience[index].Current = current
}

// RemoveExperience deletes the entry at index; later entries shift down.
func (d *Document) RemoveExperience(index int) {
	if index < 0 || index >= len(d.Experience) {
		return
	}
	d.Experience = append(d.Experience[:index], d.Experience[index+1:]...)
}

// AddEducation appends a blank entry and returns its index.
func (d *Document) AddEducation() int {
	d.Education = append(d.Education, Education{})
	return len(d.Education) - 1
}

// UpdateEducation replaces the entry at index. Out-of-range is a no-op.
func (d *Document) UpdateEducation(index int, entry Education) {
	if index < 0 || index >= len(d.Education) {
		return
	}
	d.Education[index] = entry
}

// SetEducationField sets one field of the entry at index.
func (d *Document) SetEducationField(index int, field, value string) {
	if index < 0 || index >= len(d.Education) {
		return
	}
	e := &d.Education[index]
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "field":
		e.Field = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "gpa":
		e.GPA = value
	}
}

// RemoveEducation deletes the entry at index; later entries shift down.
func (d *Document) RemoveEducation(index int) {
	if index < 0 || index >= len(d.Education) {
		return
	}
	d.Education = append(d.Education[:index], d.Education[index+1:]...)
}

// AddSkill appends the trimmed value unless it is blank or already present.
func (d *Document) AddSkill(value string) bool {
	var added bool
	d.Skills, added = addUnique(d.Skills, value)
	return added
}

// RemoveSkill removes the exact value if present.
func (d *Document) RemoveSkill(value string) {
	d.Skills = removeValue(d.Skills, value)
}

// AddAchievement appends the trimmed value unless it is blank or already present.
func (d *Document) AddAchievement(value string) bool {
	var added bool
	d.Achievements, added = addUnique(d.Achievements, value)
	return added
}

// RemoveAchievement removes the exact value if present.
func (d *Document) RemoveAchievement(value string) {
	d.Achievements = removeValue(d.Achievements, value)
}

func addUnique(list []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return list, false
	}
	for _, existing := range list {
		if existing == value {
			return list, false
		}
	}
	return append(list, value), true
}

func removeValue(list []string, value string) []string {
	out := list[:0]
	for _, existing := range list {
		if existing != value {
			out = append(out, existing)
		}
	}
	return out
}
