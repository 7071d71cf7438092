package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstrumentedRouter(t *testing.T) (*gin.Engine, *Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("piiguard_http")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "piiguard_http"))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/v1/users/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/v1/comments", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_input"})
	})
	return router, provider
}

func serve(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHTTPMetricsMiddleware_RoutePatternLabels(t *testing.T) {
	router, provider := newInstrumentedRouter(t)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/users/alice"))
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/users/bob"))
	assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPost, "/v1/comments"))
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/nope"))

	output := scrape(t, provider)

	assertBizMetricLine(t, output, `piiguard_http_http_requests_total`,
		`method="GET".*path="/v1/users/:id".*status_code="200"`, `2`)
	assertBizMetricLine(t, output, `piiguard_http_http_requests_total`,
		`method="POST".*path="/v1/comments".*status_code="422"`, `1`)
	assertBizMetricLine(t, output, `piiguard_http_http_requests_total`,
		`path="unknown".*status_code="404"`, `1`)
	assert.NotContains(t, output, "alice")
	assertBizMetricLine(t, output, `piiguard_http_http_requests_in_flight`,
		`path="/v1/users/:id"`, `0`)
}

func TestHTTPMetricsMiddleware_SkipsProbes(t *testing.T) {
	router, provider := newInstrumentedRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health"))
	}

	assert.NotContains(t, scrape(t, provider), `path="/health"`)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/v1/feature-requests/:id", sanitizePath("/v1/feature-requests/:id"))
	assert.Equal(t, "/v1/comments/*rest", sanitizePath("/v1/comments/*rest"))
	assert.Equal(t, "/", sanitizePath("/"))
	assert.Equal(t, "unknown", sanitizePath(""))
}
