package editor

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/resume/model"
	"resume-tailor/resume/render"
	"resume-tailor/resume/template"
)

const maxImportSize = 1 << 20 // 1MB

// Handler wires editor HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, validate: validator.New()}
}

// RegisterRoutes attaches editor routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/editor")
	g.POST("/session", h.open)
	g.DELETE("/session", h.close)
	g.GET("/document", h.document)
	g.PUT("/document", h.importDocument)
	g.POST("/events", h.events)
	g.POST("/reset", h.reset)
	g.PUT("/template", h.setTemplate)
	g.POST("/export/pdf", h.exportPDF)
	g.GET("/preview", h.preview)
	g.GET("/export/text", h.exportText)
}

func (h *Handler) open(c *gin.Context) {
	snap, err := h.Svc.Open(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	tag(c, snap)
	respond.Created(c, snap)
}

func (h *Handler) close(c *gin.Context) {
	if err := h.Svc.Close(c.Request.Context(), middleware.UserIDFromContext(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) document(c *gin.Context) {
	h.reply(c)(h.Svc.Document(middleware.UserIDFromContext(c)))
}

func (h *Handler) importDocument(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize))
	if err != nil {
		respond.Validation(c, "document is too large or unreadable", nil)
		return
	}
	h.reply(c)(h.Svc.Import(middleware.UserIDFromContext(c), body))
}

func (h *Handler) events(c *gin.Context) {
	var req eventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respond.Validation(c, "invalid events", fieldErrors(err))
		return
	}
	h.reply(c)(h.Svc.Apply(middleware.UserIDFromContext(c), req.toEvents()))
}

func (h *Handler) reset(c *gin.Context) {
	h.reply(c)(h.Svc.Reset(middleware.UserIDFromContext(c)))
}

func (h *Handler) setTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid request body", nil)
		return
	}
	id, ok := template.Parse(req.Template)
	if err := h.validate.Struct(req); err != nil || !ok {
		respond.Validation(c, "unknown template", gin.H{"allowed": []template.ID{template.Modern, template.Corporate, template.Creative}})
		return
	}
	h.reply(c)(h.Svc.SetTemplate(middleware.UserIDFromContext(c), id))
}

func (h *Handler) exportPDF(c *gin.Context) {
	out, err := h.Svc.ExportPDF(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set("sessionId", out.SessionID)
	c.Set("template", string(out.Template))
	c.Header("X-Export-Pages", strconv.Itoa(out.Artifact.Pages))
	c.Header("X-Export-Font", out.Artifact.Family)
	respond.Blob(c, render.PDFMimeType, out.FileName, out.Artifact.PDF)
}

func (h *Handler) preview(c *gin.Context) {
	rc, err := h.Svc.Preview(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read preview", nil)
		return
	}
	respond.Blob(c, render.PDFMimeType, "", data)
}

func (h *Handler) exportText(c *gin.Context) {
	text, err := h.Svc.ExportText(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Blob(c, render.TextMimeType, "", []byte(text))
}

func (h *Handler) reply(c *gin.Context) func(Snapshot, error) {
	return func(snap Snapshot, err error) {
		if err != nil {
			h.fail(c, err)
			return
		}
		tag(c, snap)
		respond.OK(c, snap)
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.Validation(c, "document does not match the schema", ve.Errors)
	case errors.Is(err, ErrInvalidInput):
		respond.Validation(c, err.Error(), nil)
	case errors.Is(err, ErrNoSession):
		respond.Error(c, http.StatusNotFound, "no_session", "open an editing session first", nil)
	case errors.Is(err, ErrNoPreview):
		respond.Error(c, http.StatusNotFound, "not_found", "no preview has been exported yet", nil)
	case errors.Is(err, ErrSuperseded):
		respond.Error(c, http.StatusConflict, "superseded", "a newer export replaced this one", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to export resume", nil)
	}
}

func tag(c *gin.Context, snap Snapshot) {
	c.Set("sessionId", snap.SessionID)
	c.Set("template", string(snap.Template))
}

func fieldErrors(err error) []model.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, model.FieldError{Field: fe.Namespace(), Message: fe.Tag()})
	}
	return out
}
