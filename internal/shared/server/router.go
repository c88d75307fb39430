package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/shared/config"
	"github.com/james-eo/portfolio/internal/shared/metrics"
	"github.com/james-eo/portfolio/internal/shared/server/middleware"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

const (
	groupGenerate = "GENERATE"
	groupContact  = "CONTACT"
)

// NewRouter assembles the gin engine: middleware chain, health and metrics
// endpoints, and the /api/v1 group all feature handlers register under.
func NewRouter(cfg config.Config, registrars ...RouteRegistrar) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))
	r.Use(middleware.Auth())
	r.Use(middleware.RateLimit(rateLimits()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapF(metrics.Default().Handler()))

	api := r.Group("/api/v1")
	for _, reg := range registrars {
		reg.RegisterRoutes(api)
	}
	return r
}

// Addr normalizes a port value into a listen address.
func Addr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// rateLimits throttles the expensive render endpoint and the public contact
// form; everything else passes through.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			groupGenerate: {Rate: 0.1, Burst: 3},
			groupContact:  {Rate: 0.05, Burst: 2},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.FullPath()
			switch {
			case c.Request.Method == http.MethodPost && strings.HasSuffix(path, "/resume/generate"):
				return groupGenerate
			case c.Request.Method == http.MethodPost && strings.HasSuffix(path, "/contact"):
				return groupContact
			}
			return ""
		},
	}
}
