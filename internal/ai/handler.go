package ai

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-tailor/internal/editor"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// Handler serves the tailoring endpoint.
type Handler struct {
	Svc      *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, validate: validator.New()}
}

// RegisterRoutes attaches AI routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/tailor", h.tailor)
}

type applyRequest struct {
	Target string `json:"target" validate:"required,oneof=summary experience"`
	Index  int    `json:"index" validate:"gte=0"`
}

type tailorRequest struct {
	Input string        `json:"input" validate:"required,max=4000"`
	Apply *applyRequest `json:"apply"`
}

type tailorResponse struct {
	Output   string           `json:"output"`
	Document *editor.Snapshot `json:"document,omitempty"`
}

func (h *Handler) tailor(c *gin.Context) {
	var req tailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respond.Validation(c, "input is required", nil)
		return
	}

	var apply *Apply
	if req.Apply != nil {
		apply = &Apply{Target: req.Apply.Target, Index: req.Apply.Index}
	}

	result, err := h.Svc.Tailor(c.Request.Context(), middleware.UserIDFromContext(c), req.Input, apply)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Validation(c, "input is required", nil)
		case errors.Is(err, editor.ErrNoSession):
			respond.Error(c, http.StatusNotFound, "no_session", "open an editing session first", nil)
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusBadGateway, "ai_failed", ErrGenerationFailed.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to apply generated text", nil)
		}
		return
	}
	if result.Snapshot != nil {
		c.Set("sessionId", result.Snapshot.SessionID)
	}
	respond.OK(c, tailorResponse{Output: result.Output, Document: result.Snapshot})
}
