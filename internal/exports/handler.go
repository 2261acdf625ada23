package exports

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// Handler serves export history.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exports", h.list)
}

// ExportResponse is the outward-facing representation of an export.
type ExportResponse struct {
	ExportID   string    `json:"exportId"`
	SessionID  string    `json:"sessionId"`
	Template   string    `json:"template"`
	Format     string    `json:"format"`
	Pages      int       `json:"pages,omitempty"`
	SizeBytes  int64     `json:"sizeBytes"`
	ExportedAt time.Time `json:"exportedAt"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := queryInt(c, "limit", 20)
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list exports", nil)
		}
		return
	}

	resp := make([]ExportResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ExportResponse{
			ExportID:   item.ID,
			SessionID:  item.SessionID,
			Template:   item.Template,
			Format:     item.Format,
			Pages:      item.Pages,
			SizeBytes:  item.SizeBytes,
			ExportedAt: item.CreatedAt,
		})
	}
	respond.OK(c, gin.H{"exports": resp})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
