package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// Handler exposes the sign-in flow over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the JSON auth endpoints to the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/magic-link", h.magicLink)
	rg.POST("/auth/logout", h.logout)
	rg.GET("/auth/session", h.session)
}

// RegisterCallback attaches the link landing route.
func (h *Handler) RegisterCallback(r gin.IRoutes) {
	r.GET("/auth/callback", h.callback)
}

type magicLinkRequest struct {
	Email string `json:"email"`
}

func (h *Handler) magicLink(c *gin.Context) {
	var req magicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, MsgEmailRequired, gin.H{"field": "email"})
		return
	}
	if err := h.Svc.SendLink(c.Request.Context(), req.Email); err != nil {
		var emailErr *EmailError
		if errors.As(err, &emailErr) {
			respond.Validation(c, emailErr.Message, gin.H{"field": "email"})
			return
		}
		respond.Error(c, http.StatusBadGateway, "auth_failed", "Authentication failed: could not send the sign-in link", nil)
		return
	}
	respond.JSON(c, http.StatusAccepted, gin.H{"message": MsgLinkSent})
}

func (h *Handler) callback(c *gin.Context) {
	token, user, err := h.Svc.Redeem(c.Request.Context(), c.Query("token"))
	if err != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath+"?error=invalid_link")
		return
	}
	c.Set("userId", user.ID)
	h.setCookie(c, token, int(h.Svc.opts.SessionTTL.Seconds()))
	c.Redirect(http.StatusFound, middleware.HomePath)
}

func (h *Handler) logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *Handler) session(c *gin.Context) {
	if !middleware.HasSession(c) {
		respond.OK(c, gin.H{"authenticated": false})
		return
	}
	user := gin.H{
		"id":    middleware.UserIDFromContext(c),
		"email": middleware.UserEmailFromContext(c),
	}
	if account, err := h.Svc.CurrentUser(c.Request.Context(), middleware.UserIDFromContext(c)); err == nil {
		user["createdAt"] = account.CreatedAt
		user["lastLoginAt"] = account.LastLoginAt
	}
	respond.OK(c, gin.H{"authenticated": true, "user": user})
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.Svc.opts.CookieSecure, true)
}
