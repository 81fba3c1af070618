package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"marine-api/internal/shared/metrics"
	"marine-api/internal/shared/telemetry"
)

// Logging emits a structured log per request and records its latency.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		metrics.ObserveRequest(c.Request.Method, route, status, latency)

		experimentID, _ := c.Get("experimentId")
		subjectID, _ := c.Get("subjectId")

		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"route":         route,
			"path":          c.Request.URL.Path,
			"query":         c.Request.URL.RawQuery,
			"status":        status,
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"experiment_id": experimentID,
			"subject_id":    subjectID,
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
