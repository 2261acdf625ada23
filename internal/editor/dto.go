package editor

import (
	"resume-tailor/resume/model"
)

type eventRequest struct {
	Type    string `json:"type" validate:"required,max=32"`
	Index   int    `json:"index" validate:"gte=0"`
	Field   string `json:"field" validate:"max=32"`
	Value   string `json:"value" validate:"max=10000"`
	Checked *bool  `json:"checked"`
}

type eventsRequest struct {
	Events []eventRequest `json:"events" validate:"required,min=1,max=200,dive"`
}

type templateRequest struct {
	Template string `json:"template" validate:"required"`
}

func (r eventsRequest) toEvents() []model.Event {
	out := make([]model.Event, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, model.Event{
			Type:    model.EventType(ev.Type),
			Index:   ev.Index,
			Field:   ev.Field,
			Value:   ev.Value,
			Checked: ev.Checked,
		})
	}
	return out
}
