package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-match/internal/analyses"
	"resume-match/internal/documents"
	"resume-match/internal/shared/config"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/server/middleware"
	"resume-match/internal/shared/server/respond"
	"resume-match/internal/uploads"
)

// RouterDeps carries the constructed handlers. Uploads may be nil when no
// uploads bucket is configured; its routes are skipped.
type RouterDeps struct {
	Config    config.Config
	Documents *documents.Handler
	Analyses  *analyses.Handler
	Uploads   *uploads.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.Identity())

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.Documents != nil {
		deps.Documents.RegisterRoutes(api)
	}
	if deps.Uploads != nil {
		deps.Uploads.RegisterRoutes(api)
	}
	if deps.Analyses != nil {
		analysisGroup := api.Group("")
		analysisGroup.Use(middleware.RateLimit(analysisRateLimit()))
		deps.Analyses.RegisterRoutes(analysisGroup)
	}

	return r
}

// analysisRateLimit throttles analysis runs per principal. Guests get a
// tighter budget than identified users.
func analysisRateLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"USER":  {Rate: 1, Burst: 10},
			"GUEST": {Rate: 0.2, Burst: 3},
		},
		DefaultGroup: "USER",
		GroupFor: func(c *gin.Context) string {
			if middleware.IsGuest(c) {
				return "GUEST"
			}
			return "USER"
		},
	}
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
