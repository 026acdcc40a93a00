package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetricsRouteLabels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: reg})
	if err != nil {
		t.Fatalf("NewHTTPMetrics() error = %v", err)
	}

	router := gin.New()
	router.Use(m.Handler())
	router.GET("/places/access/:userId/:placeId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/places/access/u1/p1", "/places/access/u2/p2"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	matched := testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/places/access/:userId/:placeId", "200"))
	if matched != 2 {
		t.Errorf("matched route counter = %v, want 2", matched)
	}

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	unmatched := testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, routeLabelUnmatched, "404"))
	if unmatched != 1 {
		t.Errorf("unmatched route counter = %v, want 1", unmatched)
	}
}

func TestHTTPMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: reg})
	if err != nil {
		t.Fatalf("NewHTTPMetrics() error = %v", err)
	}

	second, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: reg})
	if err != nil {
		t.Fatalf("NewHTTPMetrics() second call error = %v", err)
	}

	if first.Requests != second.Requests {
		t.Error("second construction did not reuse the requests collector")
	}
}
