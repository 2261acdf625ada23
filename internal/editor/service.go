package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-tailor/internal/exports"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/storage/object"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/shared/util"
	"resume-tailor/resume/model"
	"resume-tailor/resume/render"
	"resume-tailor/resume/template"
)

// Renderer turns a document into a PDF.
type Renderer interface {
	Render(ctx context.Context, doc model.Document, style template.Style) (render.Artifact, error)
}

// ExportRecorder stores committed exports.
type ExportRecorder interface {
	Record(ctx context.Context, export exports.Export) (exports.Export, error)
}

// PDFExport is the result of a committed PDF export.
type PDFExport struct {
	Artifact  render.Artifact
	SessionID string
	Template  template.ID
	FileName  string
}

// Service owns the editing sessions, one per user.
type Service struct {
	Renderer Renderer
	Store    object.ObjectStore
	History  ExportRecorder
	Now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService constructs a Service. History may be nil.
func NewService(renderer Renderer, store object.ObjectStore, history ExportRecorder) *Service {
	return &Service{
		Renderer: renderer,
		Store:    store,
		History:  history,
		Now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Open starts a fresh session for the user with the starter document,
// closing any session the user already had.
func (s *Service) Open(ctx context.Context, userID string) (Snapshot, error) {
	if userID == "" {
		return Snapshot{}, ErrInvalidInput
	}
	sess := newSession(uuid.NewString(), userID, s.now())

	s.mu.Lock()
	prev := s.sessions[userID]
	s.sessions[userID] = sess
	s.mu.Unlock()

	if prev != nil {
		s.teardown(ctx, prev)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// Close ends the user's session and deletes its preview.
func (s *Service) Close(ctx context.Context, userID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()
	if !ok {
		return ErrNoSession
	}
	s.teardown(ctx, sess)
	return nil
}

func (s *Service) teardown(ctx context.Context, sess *Session) {
	sess.mu.Lock()
	sess.closed = true
	key := sess.previewKey
	sess.previewKey = ""
	sess.mu.Unlock()
	s.deletePreview(ctx, sess, key)
}

// Document returns the current state of the user's session.
func (s *Service) Document(userID string) (Snapshot, error) {
	return s.update(userID, nil)
}

// Apply runs the events in order. The batch is all-or-nothing: an unknown
// event leaves the document untouched.
func (s *Service) Apply(userID string, events []model.Event) (Snapshot, error) {
	return s.update(userID, func(doc *model.Document) error {
		for _, ev := range events {
			if err := doc.Apply(ev); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
		return nil
	})
}

// Import replaces the document with a validated JSON document.
func (s *Service) Import(userID string, data []byte) (Snapshot, error) {
	if _, err := s.session(userID); err != nil {
		return Snapshot{}, err
	}
	doc, err := model.Decode(data)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.update(userID, func(current *model.Document) error {
		*current = doc
		return nil
	})
}

// Reset restores the starter document. The template is kept.
func (s *Service) Reset(userID string) (Snapshot, error) {
	return s.Apply(userID, []model.Event{{Type: model.EventReset}})
}

// SetTemplate selects the template used by later exports.
func (s *Service) SetTemplate(userID string, id template.ID) (Snapshot, error) {
	sess, err := s.session(userID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.template = id
	sess.updatedAt = s.now()
	return sess.snapshot(), nil
}

func (s *Service) update(userID string, mutate func(*model.Document) error) (Snapshot, error) {
	sess, err := s.session(userID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if mutate != nil {
		next := sess.doc.Clone()
		if err := mutate(&next); err != nil {
			return Snapshot{}, err
		}
		sess.doc = next
		sess.updatedAt = s.now()
	}
	return sess.snapshot(), nil
}

// ExportPDF renders the current document. The result becomes the session
// preview only if no newer export started meanwhile; otherwise the caller
// gets ErrSuperseded and the output is dropped.
func (s *Service) ExportPDF(ctx context.Context, userID string) (PDFExport, error) {
	sess, err := s.session(userID)
	if err != nil {
		return PDFExport{}, err
	}

	sess.mu.Lock()
	sess.seq++
	seq := sess.seq
	doc := sess.doc.Clone()
	templateID := sess.template
	sess.mu.Unlock()

	metrics.IncExportStarted()
	start := time.Now()

	artifact, err := s.Renderer.Render(ctx, doc, template.Lookup(templateID))
	if err != nil {
		metrics.IncExportFailed()
		return PDFExport{}, fmt.Errorf("render pdf: %w", err)
	}

	if s.stale(sess, seq) {
		return PDFExport{}, s.supersede(sess, seq)
	}

	key := object.PreviewKey(userID, sess.ID, seq)
	size, err := s.Store.Put(ctx, key, render.PDFMimeType, bytes.NewReader(artifact.PDF))
	if err != nil {
		metrics.IncExportFailed()
		return PDFExport{}, fmt.Errorf("store preview: %w", err)
	}

	sess.mu.Lock()
	if sess.closed || sess.seq != seq {
		sess.mu.Unlock()
		s.deletePreview(ctx, sess, key)
		return PDFExport{}, s.supersede(sess, seq)
	}
	old := sess.previewKey
	sess.previewKey = key
	sess.mu.Unlock()
	s.deletePreview(ctx, sess, old)

	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(metrics.SinceMillis(start))
	s.record(ctx, exports.Export{
		UserID:    userID,
		SessionID: sess.ID,
		Template:  string(templateID),
		Format:    exports.FormatPDF,
		Pages:     artifact.Pages,
		SizeBytes: size,
		FileKey:   key,
	})

	return PDFExport{
		Artifact:  artifact,
		SessionID: sess.ID,
		Template:  templateID,
		FileName:  util.ExportFileName(doc.Personal.FullName, "pdf"),
	}, nil
}

func (s *Service) stale(sess *Session, seq uint64) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.closed || sess.seq != seq
}

func (s *Service) supersede(sess *Session, seq uint64) error {
	metrics.IncExportSuperseded()
	telemetry.Info("export.superseded", map[string]any{
		"user_id":    sess.UserID,
		"session_id": sess.ID,
		"seq":        seq,
	})
	return ErrSuperseded
}

// Preview opens the last committed export of the session.
func (s *Service) Preview(ctx context.Context, userID string) (io.ReadCloser, error) {
	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	key := sess.previewKey
	sess.mu.Unlock()
	if key == "" {
		return nil, ErrNoPreview
	}
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open preview: %w", err)
	}
	return rc, nil
}

// ExportText returns the plain-text rendering of the session document.
func (s *Service) ExportText(ctx context.Context, userID string) (string, error) {
	snap, err := s.Document(userID)
	if err != nil {
		return "", err
	}
	text := render.PlainText(snap.Document)
	s.record(ctx, exports.Export{
		UserID:    userID,
		SessionID: snap.SessionID,
		Template:  string(snap.Template),
		Format:    exports.FormatText,
		SizeBytes: int64(len(text)),
	})
	return text, nil
}

func (s *Service) session(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

func (s *Service) record(ctx context.Context, export exports.Export) {
	if s.History == nil {
		return
	}
	if _, err := s.History.Record(ctx, export); err != nil {
		telemetry.Warn("export.history_failed", map[string]any{
			"user_id":    export.UserID,
			"session_id": export.SessionID,
			"format":     export.Format,
			"error":      err,
		})
	}
}

func (s *Service) deletePreview(ctx context.Context, sess *Session, key string) {
	if key == "" {
		return
	}
	if err := s.Store.Delete(context.WithoutCancel(ctx), key); err != nil {
		telemetry.Warn("preview.delete_failed", map[string]any{
			"user_id":    sess.UserID,
			"session_id": sess.ID,
			"key":        key,
			"error":      err,
		})
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
