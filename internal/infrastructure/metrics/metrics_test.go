package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsExposed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", Handler())

	RecordSearch("sample")
	RecordDetail("live")
	RecordFallback("search")
	RecordCache("memory", "hit")
	RecordUpstream("findByIngredients", 200, 120*time.Millisecond)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `recipeasy_searches_total{source="sample"}`)
	assert.Contains(t, body, `recipeasy_recipe_details_total{source="live"}`)
	assert.Contains(t, body, `recipeasy_sample_fallbacks_total{operation="search"}`)
	assert.Contains(t, body, `recipeasy_cache_operations_total{backend="memory",result="hit"}`)
	assert.Contains(t, body, `recipeasy_upstream_requests_total{endpoint="findByIngredients",status_code="200"}`)
	assert.Contains(t, body, `recipeasy_http_requests_total{method="GET",path="/ping",status_code="204"}`)
	assert.Contains(t, body, `path="unmatched"`)
}
