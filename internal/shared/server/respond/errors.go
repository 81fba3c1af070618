package respond

import (
	"github.com/gin-gonic/gin"

	"marine-api/internal/shared/telemetry"
)

// ErrorResponse is the single error shape returned by every route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure and aborts with {"error": message}.
func Error(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if cause, ok := c.Get(causeKey); ok {
		fields["cause"] = cause
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

const causeKey = "errorCause"

// InternalError responds 500 with a generic message and logs err as the cause.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		c.Set(causeKey, err.Error())
	}
	Error(c, 500, "Internal server error.")
}
