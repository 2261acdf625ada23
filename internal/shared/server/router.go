package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/ai"
	"resume-tailor/internal/auth"
	"resume-tailor/internal/editor"
	"resume-tailor/internal/exports"
	"resume-tailor/internal/pages"
	"resume-tailor/internal/services/health"
	sharedauth "resume-tailor/internal/shared/auth"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

const (
	rateGroupDefault   = "DEFAULT"
	rateGroupAI        = "AI"
	rateGroupMagicLink = "MAGIC_LINK"
)

var rateRules = map[string]middleware.RateLimitRule{
	rateGroupDefault:   {Rate: 10, Burst: 30},
	rateGroupAI:        {Rate: 0.2, Burst: 3},
	rateGroupMagicLink: {Rate: 0.05, Burst: 3},
}

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config         config.Config
	DB             *sql.DB
	Issuer         *sharedauth.Issuer
	AuthHandler    *auth.Handler
	EditorHandler  *editor.Handler
	AIHandler      *ai.Handler
	ExportsHandler *exports.Handler
	Pages          bool
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Session(deps.Issuer),
	)

	healthSvc := health.NewService(deps.DB)
	r.GET("/healthz", func(c *gin.Context) {
		status := healthSvc.Check(c.Request.Context())
		if !status.OK {
			respond.JSON(c, http.StatusServiceUnavailable, status)
			return
		}
		respond.OK(c, status)
	})
	r.GET("/metrics", metrics.Handler())

	if deps.Pages {
		pages.Register(r)
	}

	limiter := middleware.NewRateLimiter(nil)
	limit := func(group string) gin.HandlerFunc {
		return middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        rateRules,
			DefaultGroup: group,
			GroupFor:     rateGroupFor,
			Limiter:      limiter,
		})
	}

	api := r.Group("/api/v1")
	editor.RegisterCatalog(api)
	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterCallback(r)
		deps.AuthHandler.RegisterRoutes(api.Group("", limit(rateGroupDefault)))
	}

	protected := api.Group("", middleware.RequireSession(), limit(rateGroupDefault))
	if deps.EditorHandler != nil {
		deps.EditorHandler.RegisterRoutes(protected)
	}
	if deps.AIHandler != nil {
		deps.AIHandler.RegisterRoutes(protected)
	}
	if deps.ExportsHandler != nil {
		deps.ExportsHandler.RegisterRoutes(protected)
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/ai/tailor":
		return rateGroupAI
	case "/api/v1/auth/magic-link":
		return rateGroupMagicLink
	default:
		return ""
	}
}

// Shutdown drains in-flight requests on srv.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
