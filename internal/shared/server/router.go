package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marine-api/internal/services/health"
	"marine-api/internal/shared/config"
	"marine-api/internal/shared/metrics"
	"marine-api/internal/shared/server/middleware"
	"marine-api/internal/shared/server/respond"
	"marine-api/internal/shared/telemetry"
)

// RouteRegistrar attaches a feature's routes.
type RouteRegistrar interface {
	RegisterRoutes(rg gin.IRoutes)
}

// RouterDeps holds handler dependencies for route registration.
type RouterDeps struct {
	Config   config.Config
	Health   *health.Service
	Handlers []RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "Resource not found.")
	})
	r.NoMethod(func(c *gin.Context) {
		respond.Error(c, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"designation": "Project Armada",
			"resource":    "JSON-based API",
			"status":      "Classified",
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		st, err := deps.Health.Status(c.Request.Context())
		if err != nil {
			telemetry.Warn("health.degraded", map[string]any{"error": err})
			respond.JSON(c, http.StatusServiceUnavailable, st)
			return
		}
		respond.OK(c, st)
	})
	r.GET("/metrics", metrics.Handler())

	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(r)
		}
	}

	return r
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
