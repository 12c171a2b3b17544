package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP 指標
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipeasy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipeasy_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 業務指標
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipeasy_searches_total",
			Help: "Recipe searches by result source",
		},
		[]string{"source"},
	)
	detailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipeasy_recipe_details_total",
			Help: "Recipe detail lookups by result source",
		},
		[]string{"source"},
	)
	fallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipeasy_sample_fallbacks_total",
			Help: "Live lookups recovered from the offline catalog",
		},
		[]string{"operation"},
	)

	// 快取指標
	cacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipeasy_cache_operations_total",
			Help: "Response cache operations",
		},
		[]string{"backend", "result"},
	)

	// 上游指標
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipeasy_upstream_requests_total",
			Help: "Requests sent to the recipe API",
		},
		[]string{"endpoint", "status_code"},
	)
	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipeasy_upstream_request_duration_seconds",
			Help:    "Recipe API request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 15.0},
		},
		[]string{"endpoint"},
	)
)

// RecordSearch 記錄搜尋來源（live、sample、cache）
func RecordSearch(source string) {
	searchesTotal.WithLabelValues(source).Inc()
}

// RecordDetail 記錄詳情來源
func RecordDetail(source string) {
	detailsTotal.WithLabelValues(source).Inc()
}

// RecordFallback 記錄回退到範例資料
func RecordFallback(operation string) {
	fallbacksTotal.WithLabelValues(operation).Inc()
}

// RecordCache 記錄快取操作（hit、miss、set、evict、error）
func RecordCache(backend, result string) {
	cacheOperations.WithLabelValues(backend, result).Inc()
}

// RecordUpstream 記錄上游請求；status 為 0 表示傳輸錯誤
func RecordUpstream(endpoint string, status int, duration time.Duration) {
	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	upstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Middleware 記錄 HTTP 請求指標
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler Prometheus 抓取端點
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
