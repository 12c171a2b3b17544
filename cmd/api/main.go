package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipeasy/internal/api"
	"recipeasy/internal/api/handlers/health"
	"recipeasy/internal/core/auth"
	"recipeasy/internal/core/cache"
	"recipeasy/internal/core/favorite"
	"recipeasy/internal/core/recipe"
	"recipeasy/internal/core/spoonacular"
	"recipeasy/internal/infrastructure/config"
	"recipeasy/internal/infrastructure/database"
	"recipeasy/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("env", cfg.App.Env),
		zap.String("spoonacular_api_key", config.MaskAPIKey(cfg.Spoonacular.APIKey)),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.String("database_driver", cfg.Database.Driver),
	)

	// 初始化快取
	store, err := newStore(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	defer store.Close()

	// 資料庫無法連線時仍啟動，認證與收藏回傳 503
	db := openDatabase(cfg.Database)
	defer database.Close(db)

	mode := recipe.ParseSourceMode(cfg.Recipes.UseSample)
	client := spoonacular.NewClient(cfg.Spoonacular)
	catalog := recipe.DefaultCatalog()
	if !client.HasAPIKey() {
		common.LogWarn("未設定 SPOONACULAR_API_KEY，搜尋將使用範例資料", zap.String("source_mode", mode.String()))
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, api.Services{
		Search:     recipe.NewSearchService(catalog, client, store, mode),
		Detail:     recipe.NewDetailService(catalog, client, store, mode).WithImageBase(cfg.Spoonacular.ImageBaseURL),
		Auth:       auth.NewService(db, cfg.Auth),
		Favorites:  favorite.NewService(db),
		Cache:      store,
		Database:   health.PingFunc(func(ctx context.Context) error { return database.Ping(ctx, db) }),
		SourceMode: mode.String(),
		HasAPIKey:  client.HasAPIKey(),
	})
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

func newStore(cfg *config.Config) (cache.Store, error) {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemory(
			cache.WithCapacity(cfg.Cache.MaxSize),
			cache.WithTTL(cfg.Cache.TTL),
		), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		KeyPrefix: cfg.Redis.KeyPrefix,
		TTL:       cfg.Cache.TTL,
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func openDatabase(cfg config.DatabaseConfig) *gorm.DB {
	db, err := database.Open(cfg)
	if err != nil {
		common.LogWarn("資料庫連線失敗，認證與收藏功能停用", zap.Error(err))
		return nil
	}
	if err := database.Migrate(db, &auth.User{}, &favorite.Favorite{}); err != nil {
		common.LogWarn("資料表遷移失敗，認證與收藏功能停用", zap.Error(err))
		_ = database.Close(db)
		return nil
	}
	return db
}
