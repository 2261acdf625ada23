package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"resume-tailor/internal/editor"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/resume/model"
)

const maxInputLength = 4000

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed wraps any provider failure.
	ErrGenerationFailed = errors.New("AI generation failed")
)

// Apply targets.
const (
	TargetSummary    = "summary"
	TargetExperience = "experience"
)

// Apply says where the generated text should go in the session document.
type Apply struct {
	Target string
	Index  int
}

// DocumentEditor applies edits to a user's editing session.
type DocumentEditor interface {
	Document(userID string) (editor.Snapshot, error)
	Apply(userID string, events []model.Event) (editor.Snapshot, error)
}

// Result is the generated text and, when applied, the updated session.
type Result struct {
	Output   string
	Snapshot *editor.Snapshot
}

// Service asks the configured model for tailored resume text.
type Service struct {
	Client llm.Client
	Editor DocumentEditor
}

// NewService constructs a Service.
func NewService(client llm.Client, ed DocumentEditor) *Service {
	return &Service{Client: client, Editor: ed}
}

// Tailor generates text for input. With apply set the text replaces the
// summary or an experience description; on failure nothing is changed.
func (s *Service) Tailor(ctx context.Context, userID, input string, apply *Apply) (Result, error) {
	input = strings.TrimSpace(input)
	if input == "" || utf8.RuneCountInString(input) > maxInputLength {
		return Result{}, ErrInvalidInput
	}
	var event *model.Event
	if apply != nil {
		ev, err := applyEvent(*apply)
		if err != nil {
			return Result{}, err
		}
		event = &ev
		snap, err := s.Editor.Document(userID)
		if err != nil {
			return Result{}, err
		}
		if apply.Target == TargetExperience && apply.Index >= len(snap.Document.Experience) {
			return Result{}, ErrInvalidInput
		}
	}

	metrics.IncAIRequest()
	start := time.Now()
	output, err := s.Client.Complete(ctx, BuildPrompt(input))
	metrics.ObserveAIDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncAIFailure()
		telemetry.Error("ai.failed", map[string]any{
			"user_id": userID,
			"error":   err,
		})
		return Result{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	result := Result{Output: output}
	if event == nil {
		return result, nil
	}
	event.Value = output
	snap, err := s.Editor.Apply(userID, []model.Event{*event})
	if err != nil {
		return Result{}, err
	}
	result.Snapshot = &snap
	return result, nil
}

func applyEvent(a Apply) (model.Event, error) {
	switch a.Target {
	case TargetSummary:
		return model.Event{Type: model.EventPersonalSet, Field: string(model.FieldSummary)}, nil
	case TargetExperience:
		if a.Index < 0 {
			return model.Event{}, ErrInvalidInput
		}
		return model.Event{Type: model.EventExperienceSet, Index: a.Index, Field: "description"}, nil
	default:
		return model.Event{}, ErrInvalidInput
	}
}
