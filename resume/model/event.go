package model

import (
	"errors"
	"fmt"
)

// EventType identifies one kind of form edit.
type EventType string

const (
	EventPersonalSet       EventType = "personal.set"
	EventExperienceAdd     EventType = "experience.add"
	EventExperienceSet     EventType = "experience.set"
	EventExperienceRemove  EventType = "experience.remove"
	EventEducationAdd      EventType = "education.add"
	EventEducationSet      EventType = "education.set"
	EventEducationRemove   EventType = "education.remove"
	EventSkillAdd          EventType = "skill.add"
	EventSkillRemove       EventType = "skill.remove"
	EventAchievementAdd    EventType = "achievement.add"
	EventAchievementRemove EventType = "achievement.remove"
	EventReset             EventType = "reset"
)

// ErrUnknownEvent is returned by Apply for an unrecognised event type.
var ErrUnknownEvent = errors.New("unknown event type")

// Event is a discrete edit. Field/Value carry the changed field, Checked
// carries the "current" checkbox of an experience entry, Index selects the
// entry for the list sections.
type Event struct {
	Type    EventType `json:"type"`
	Index   int       `json:"index,omitempty"`
	Field   string    `json:"field,omitempty"`
	Value   string    `json:"value,omitempty"`
	Checked *bool     `json:"checked,omitempty"`
}

// Apply runs the edit against the document. Edits themselves never fail;
// only an unrecognised event type is reported.
func (d *Document) Apply(ev Event) error {
	switch ev.Type {
	case EventPersonalSet:
		d.SetPersonal(PersonalField(ev.Field), ev.Value)
	case EventExperienceAdd:
		d.AddExperience()
	case EventExperienceSet:
		if ev.Field == "current" {
			d.SetExperienceCurrent(ev.Index, ev.Checked != nil && *ev.Checked)
			return nil
		}
		d.SetExperienceField(ev.Index, ev.Field, ev.Value)
	case EventExperienceRemove:
		d.RemoveExperience(ev.Index)
	case EventEducationAdd:
		d.AddEducation()
	case EventEducationSet:
		d.SetEducationField(ev.Index, ev.Field, ev.Value)
	case EventEducationRemove:
		d.RemoveEducation(ev.Index)
	case EventSkillAdd:
		d.AddSkill(ev.Value)
	case EventSkillRemove:
		d.RemoveSkill(ev.Value)
	case EventAchievementAdd:
		d.AddAchievement(ev.Value)
	case EventAchievementRemove:
		d.RemoveAchievement(ev.Value)
	case EventReset:
		*d = Starter()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}
