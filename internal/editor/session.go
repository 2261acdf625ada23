package editor

import (
	"sync"
	"time"

	"resume-tailor/resume/model"
	"resume-tailor/resume/template"
)

// Session is the form state of one user between mount and unmount.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu         sync.Mutex
	doc        model.Document
	template   template.ID
	updatedAt  time.Time
	seq        uint64
	previewKey string
	closed     bool
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	SessionID  string         `json:"sessionId"`
	Template   template.ID    `json:"template"`
	Document   model.Document `json:"document"`
	HasPreview bool           `json:"hasPreview"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func newSession(id, userID string, now time.Time) *Session {
	return &Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		doc:       model.Starter(),
		template:  template.Default,
		updatedAt: now,
	}
}

// snapshot must be called with mu held.
func (s *Session) snapshot() Snapshot {
	return Snapshot{
		SessionID:  s.ID,
		Template:   s.template,
		Document:   s.doc.Clone(),
		HasPreview: s.previewKey != "",
		UpdatedAt:  s.updatedAt,
	}
}
