package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	authHandler "recipeasy/internal/api/handlers/auth"
	favoriteHandler "recipeasy/internal/api/handlers/favorite"
	"recipeasy/internal/api/handlers/health"
	recipeHandler "recipeasy/internal/api/handlers/recipe"
	"recipeasy/internal/api/middleware"
	"recipeasy/internal/core/cache"
	"recipeasy/internal/infrastructure/config"
	"recipeasy/internal/infrastructure/metrics"
	"recipeasy/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthService 同時提供認證路由與中間件所需方法
type AuthService interface {
	authHandler.Service
	middleware.Authenticator
}

// Services 路由依賴的服務
type Services struct {
	Search     recipeHandler.Searcher
	Detail     recipeHandler.DetailFetcher
	Auth       AuthService
	Favorites  favoriteHandler.Service
	Cache      cache.Store
	Database   health.Pinger
	SourceMode string
	HasAPIKey  bool
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc Services) (*gin.Engine, error) {
	if svc.Search == nil || svc.Detail == nil || svc.Auth == nil || svc.Favorites == nil {
		return nil, fmt.Errorf("router requires search, detail, auth and favorite services")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()
	debug := cfg.App.Debug

	// 註冊基礎中間件
	router.Use(middleware.Recovery(debug))
	router.Use(requestid.New()) // 自動生成請求 ID
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())

	// CORS 設置
	router.Use(cors.New(corsConfig(cfg.CORS)))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	// 請求超時
	router.Use(requestTimeout(cfg.Server.RequestTimeout, debug))

	cacheName := ""
	if svc.Cache != nil {
		cacheName = svc.Cache.Name()
	}
	healthHandler := health.NewHandler(health.Options{
		Version:    cfg.App.Version,
		CacheName:  cacheName,
		Cache:      svc.Cache,
		Database:   svc.Database,
		SourceMode: svc.SourceMode,
		HasAPIKey:  svc.HasAPIKey,
	})

	// 健康檢查路由
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", metrics.Handler())

	recipes := recipeHandler.NewHandler(svc.Search, svc.Detail, debug)
	auth := authHandler.NewHandler(svc.Auth, debug)
	favorites := favoriteHandler.NewHandler(svc.Favorites, debug)
	requireAuth := middleware.RequireAuth(svc.Auth, debug)

	// API 路由組
	api := router.Group("/api")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		api.GET("/health", healthHandler.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", auth.HandleSignup)
			authGroup.POST("/login", auth.HandleLogin)
			authGroup.GET("/me", requireAuth, auth.HandleMe)
			authGroup.PUT("/preferences", requireAuth, auth.HandleUpdatePreferences)
		}

		recipeGroup := api.Group("/recipes", middleware.OptionalAuth(svc.Auth))
		{
			recipeGroup.POST("/search", recipes.HandleSearch)
			recipeGroup.GET("/:id", recipes.HandleDetail)
		}

		favoriteGroup := api.Group("/favorites", requireAuth)
		{
			favoriteGroup.GET("", favorites.HandleList)
			favoriteGroup.POST("", favorites.HandleAdd)
			favoriteGroup.GET("/check/:recipeId", favorites.HandleCheck)
			favoriteGroup.DELETE("/:recipeId", favorites.HandleRemove)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.RequestURI()),
		})
	})

	common.LogInfo("Router setup completed successfully",
		zap.String("cache_backend", cacheName),
		zap.String("source_mode", svc.SourceMode),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.AllowAll || len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}

// requestTimeout 為請求設定期限；處理器未回應且逾時時回傳 504
func requestTimeout(timeout time.Duration, debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", common.RequestID(c)),
				zap.Duration("timeout", timeout),
			)
			common.WriteError(c, common.ErrGatewayTimeout, debug)
		}
	}
}
