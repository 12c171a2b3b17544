package cache

import (
	"context"
	"time"
)

// 預設快取參數
const (
	DefaultCapacity = 100
	DefaultTTL      = 10 * time.Minute
)

// Store 回應快取介面，值為序列化後的 JSON
type Store interface {
	// Get 取得快取值；不存在或已過期時 ok 為 false
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set 寫入快取值
	Set(ctx context.Context, key string, value []byte)
	// Name 後端名稱，用於日誌與健康檢查
	Name() string
	// Ping 檢查後端是否可用
	Ping(ctx context.Context) error
	Close() error
}

// SearchKey 搜尋結果快取鍵
func SearchKey(rawIngredients, minProtein, maxTime string) string {
	return "search:" + rawIngredients + ":" + minProtein + ":" + maxTime
}

// RecipeKey 食譜詳情快取鍵
func RecipeKey(id string) string {
	return "recipe:" + id
}
