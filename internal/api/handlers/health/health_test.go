package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(context.Context) error { return nil }

func newRouter(opts Options) *gin.Engine {
	h := NewHandler(opts)
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)
	r.GET("/ready", h.ReadinessCheck)
	r.GET("/live", h.LivenessCheck)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	r := newRouter(Options{
		Version:    "1.2.3",
		CacheName:  "memory",
		Cache:      PingFunc(ok),
		Database:   PingFunc(ok),
		SourceMode: "prefer-live",
		HasAPIKey:  true,
	})

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ReciPeasy API is running", resp.Message)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, CacheStatus{Backend: "memory", Healthy: true}, resp.Cache)
	assert.True(t, resp.Recipes.HasAPIKey)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Contains(t, resp.Runtime, "goroutines")
}

func TestReadinessCheck(t *testing.T) {
	t.Run("就緒", func(t *testing.T) {
		w := get(newRouter(Options{Cache: PingFunc(ok), Database: PingFunc(ok)}), "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","checks":{"database":"ok","cache":"ok"}}`, w.Body.String())
	})

	t.Run("資料庫不可用", func(t *testing.T) {
		down := PingFunc(func(context.Context) error { return errors.New("connection refused") })
		w := get(newRouter(Options{Cache: PingFunc(ok), Database: down}), "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not_ready","checks":{"database":"connection refused","cache":"ok"}}`, w.Body.String())
	})

	t.Run("未設定依賴", func(t *testing.T) {
		w := get(newRouter(Options{}), "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRootAndLiveness(t *testing.T) {
	r := newRouter(Options{})

	assert.JSONEq(t, `{"status":"ok","message":"ReciPeasy API root"}`, get(r, "/").Body.String())
	assert.JSONEq(t, `{"status":"alive"}`, get(r, "/live").Body.String())
}
