package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"recipeasy/internal/infrastructure/metrics"
	"recipeasy/internal/pkg/common"

	"go.uber.org/zap"
)

// Memory 程序內快取，依插入順序淘汰（FIFO），讀取時才清除過期項目
type Memory struct {
	mu       sync.Mutex
	store    map[string]*list.Element
	order    *list.List
	capacity int
	ttl      time.Duration
	now      func() time.Time
	stats    Stats
}

// memoryEntry 緩存條目
type memoryEntry struct {
	key        string
	data       []byte
	insertedAt time.Time
}

// Stats 緩存統計
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// Option Memory 設定選項
type Option func(*Memory)

// WithClock 替換時鐘（測試用）
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCapacity 設定最大條目數
func WithCapacity(capacity int) Option {
	return func(m *Memory) {
		if capacity > 0 {
			m.capacity = capacity
		}
	}
}

// WithTTL 設定存活時間
func WithTTL(ttl time.Duration) Option {
	return func(m *Memory) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// NewMemory 創建新的程序內快取
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		store:    make(map[string]*list.Element),
		order:    list.New(),
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("後端", m.Name()),
		zap.Int("最大容量", m.capacity),
		zap.Duration("存活時間", m.ttl),
	)
	return m
}

// Get 獲取緩存值
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, exists := m.store[key]
	if !exists {
		m.stats.Misses++
		metrics.RecordCache(m.Name(), "miss")
		common.LogCacheMiss(m.Name(), key)
		return nil, false
	}

	entry := elem.Value.(*memoryEntry)
	if m.now().Sub(entry.insertedAt) > m.ttl {
		m.order.Remove(elem)
		delete(m.store, key)
		m.stats.Misses++
		m.stats.Evictions++
		metrics.RecordCache(m.Name(), "expired")
		common.LogDebug("快取已過期", zap.String("key", key))
		return nil, false
	}

	m.stats.Hits++
	metrics.RecordCache(m.Name(), "hit")
	common.LogCacheHit(m.Name(), key)

	data := make([]byte, len(entry.data))
	copy(data, entry.data)
	return data, true
}

// Set 設置緩存值；覆寫既有鍵時保留其插入位置
func (m *Memory) Set(_ context.Context, key string, value []byte) {
	data := make([]byte, len(value))
	copy(data, value)

	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, exists := m.store[key]; exists {
		entry := elem.Value.(*memoryEntry)
		entry.data = data
		entry.insertedAt = m.now()
		metrics.RecordCache(m.Name(), "set")
		return
	}

	// 新鍵寫入前，滿載時淘汰最早插入的項目
	for len(m.store) >= m.capacity {
		m.evictOldest()
	}

	m.store[key] = m.order.PushBack(&memoryEntry{
		key:        key,
		data:       data,
		insertedAt: m.now(),
	})
	metrics.RecordCache(m.Name(), "set")
}

// evictOldest 淘汰最早插入的項目，呼叫前須持有鎖
func (m *Memory) evictOldest() {
	oldest := m.order.Front()
	if oldest == nil {
		return
	}
	entry := m.order.Remove(oldest).(*memoryEntry)
	delete(m.store, entry.key)
	m.stats.Evictions++
	metrics.RecordCache(m.Name(), "evict")
	common.LogDebug("快取淘汰", zap.String("key", entry.key))
}

// Len 目前條目數（含尚未被讀取清除的過期項目）
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store)
}

// GetStats 獲取緩存統計
func (m *Memory) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.stats
	stats.Size = len(m.store)
	stats.Capacity = m.capacity
	return stats
}

// Clear 清空緩存
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]*list.Element)
	m.order.Init()
}

// Name 後端名稱
func (m *Memory) Name() string {
	return "memory"
}

// Ping 程序內快取永遠可用
func (m *Memory) Ping(context.Context) error {
	return nil
}

// Close 釋放資源
func (m *Memory) Close() error {
	m.Clear()
	return nil
}
