package macro

import (
	"sync"
	"time"
)

type memoEntry struct {
	value    any
	storedAt time.Time
}

// memoCache 按操作名缓存取数结果，过期时间由调用方按条目指定。
// 每个 Provider 实例独占一个缓存，不做进程级共享。
type memoCache struct {
	mu      sync.Mutex
	entries map[string]memoEntry
}

func newMemoCache() *memoCache {
	return &memoCache{entries: map[string]memoEntry{}}
}

func (c *memoCache) get(key string, maxAge time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > maxAge {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *memoCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoEntry{value: value, storedAt: time.Now()}
}
