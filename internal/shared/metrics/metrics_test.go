package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(experimentsCreated.WithLabelValues("obedience"))
	IncExperimentCreated("obedience")
	if got := testutil.ToFloat64(experimentsCreated.WithLabelValues("obedience")); got != before+1 {
		t.Fatalf("expected created counter %v, got %v", before+1, got)
	}

	beforeDeleted := testutil.ToFloat64(experimentsDeleted)
	IncExperimentDeleted()
	if got := testutil.ToFloat64(experimentsDeleted); got != beforeDeleted+1 {
		t.Fatalf("expected deleted counter %v, got %v", beforeDeleted+1, got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncValidationFailure("score")
	ObserveRequest(http.MethodGet, "/experiment", http.StatusOK, 3*time.Millisecond)

	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		"marine_validation_failures_total{field=\"score\"}",
		"marine_http_request_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
