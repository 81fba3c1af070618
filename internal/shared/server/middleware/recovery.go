package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"marine-api/internal/shared/server/respond"
	"marine-api/internal/shared/telemetry"
)

// Recovery turns a handler panic into the standard 500 error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			telemetry.Error("panic.recovered", map[string]any{
				"request_id": RequestIDFromContext(c),
				"panic":      rec,
				"route":      c.FullPath(),
				"method":     c.Request.Method,
				"stack":      string(debug.Stack()),
			})
			respond.Error(c, http.StatusInternalServerError, "Internal server error.")
		}()
		c.Next()
	}
}
