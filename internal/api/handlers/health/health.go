package health

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"recipeasy/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

var errNotConfigured = errors.New("not configured")

// Pinger 可檢查連線狀態的依賴
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc 將函式轉為 Pinger
type PingFunc func(ctx context.Context) error

// Ping 呼叫函式本身
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     CacheStatus            `json:"cache"`
	Recipes   RecipesStatus          `json:"recipes"`
}

// CacheStatus 快取狀態
type CacheStatus struct {
	Backend string `json:"backend"`
	Healthy bool   `json:"healthy"`
}

// RecipesStatus 食譜來源狀態
type RecipesStatus struct {
	SourceMode string `json:"source_mode"`
	HasAPIKey  bool   `json:"has_api_key"`
}

// Options 健康檢查依賴
type Options struct {
	Version    string
	CacheName  string
	Cache      Pinger
	Database   Pinger
	SourceMode string
	HasAPIKey  bool
}

// Handler 健康檢查處理器
type Handler struct {
	opts Options
	now  func() time.Time
}

// NewHandler 創建健康檢查處理器
func NewHandler(opts Options) *Handler {
	return &Handler{opts: opts, now: time.Now}
}

// Root GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "ReciPeasy API root",
	})
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Message:   "ReciPeasy API is running",
		Timestamp: h.now().UTC(),
		Version:   h.opts.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Cache: CacheStatus{
			Backend: h.opts.CacheName,
			Healthy: ping(c.Request.Context(), h.opts.Cache) == nil,
		},
		Recipes: RecipesStatus{
			SourceMode: h.opts.SourceMode,
			HasAPIKey:  h.opts.HasAPIKey,
		},
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查：資料庫與快取皆可用
func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{
		"database": "ok",
		"cache":    "ok",
	}
	ready := true

	if err := ping(ctx, h.opts.Database); err != nil {
		checks["database"] = err.Error()
		ready = false
	}
	if err := ping(ctx, h.opts.Cache); err != nil {
		checks["cache"] = err.Error()
		ready = false
	}

	if !ready {
		common.LogWarn("就緒檢查失敗", zap.Any("checks", checks))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"checks": checks,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": checks,
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func ping(ctx context.Context, p Pinger) error {
	if p == nil {
		return errNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return p.Ping(ctx)
}
