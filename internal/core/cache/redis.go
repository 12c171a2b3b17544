package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipeasy/internal/infrastructure/metrics"
	"recipeasy/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Redis 共用快取後端；容量交由 Redis 的 maxmemory 策略處理
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOptions Redis 連線設定
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// NewRedis 創建 Redis 快取並測試連接
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisWithClient(client, opts.KeyPrefix, opts.TTL), nil
}

// NewRedisWithClient 使用既有 client 創建 Redis 快取
func NewRedisWithClient(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	common.LogInfo("Redis 快取已初始化",
		zap.String("位址", client.Options().Addr),
		zap.String("前綴", prefix),
		zap.Duration("存活時間", ttl),
	)
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get 獲取緩存；Redis 錯誤視為未命中
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCache(r.Name(), "miss")
			common.LogCacheMiss(r.Name(), key)
			return nil, false
		}
		metrics.RecordCache(r.Name(), "error")
		common.LogWarn("讀取 Redis 快取失敗", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	metrics.RecordCache(r.Name(), "hit")
	common.LogCacheHit(r.Name(), key)
	return data, true
}

// Set 設置緩存；失敗只記錄日誌
func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		metrics.RecordCache(r.Name(), "error")
		common.LogWarn("寫入 Redis 快取失敗", zap.String("key", key), zap.Error(err))
		return
	}
	metrics.RecordCache(r.Name(), "set")
}

// Name 後端名稱
func (r *Redis) Name() string {
	return "redis"
}

// Ping 檢查連線
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close 關閉連線
func (r *Redis) Close() error {
	return r.client.Close()
}
