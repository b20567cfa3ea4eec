package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newInstrumentedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	return r
}

func TestGinMiddlewareCountsServerErrors(t *testing.T) {
	r := newInstrumentedEngine()

	before := testutil.ToFloat64(requestErrors.WithLabelValues(http.MethodGet, "/boom"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	if got := testutil.ToFloat64(requestErrors.WithLabelValues(http.MethodGet, "/boom")); got != before+1 {
		t.Fatalf("expected error counter to grow by 1, got %v -> %v", before, got)
	}
	// 200 响应不计入错误
	if got := testutil.ToFloat64(requestErrors.WithLabelValues(http.MethodGet, "/ok")); got != 0 {
		t.Fatalf("expected no errors recorded for /ok, got %v", got)
	}
}

func TestGinMiddlewareCollapsesUnmatchedPaths(t *testing.T) {
	r := newInstrumentedEngine()

	before := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing-1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing-2", nil))

	if got := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404")); got != before+2 {
		t.Fatalf("expected both unknown paths under %q, got %v -> %v", unmatchedPath, before, got)
	}
}
