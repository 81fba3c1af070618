package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"marine-api/internal/shared/telemetry"
)

func TestRecoveryReturnsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	defer telemetry.SetOutput(&buf)()

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/experiment", func(c *gin.Context) {
		panic("store exploded")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/experiment", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"error":"Internal server error."}` {
		t.Fatalf("unexpected body %s", got)
	}
	if !strings.Contains(buf.String(), `"msg":"panic.recovered"`) || !strings.Contains(buf.String(), "store exploded") {
		t.Fatalf("expected panic to be logged, got %s", buf.String())
	}
}
