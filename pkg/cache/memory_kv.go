package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

type memoryItem struct {
	value   string
	expires time.Time // zero = no ttl
}

// MemoryKV stores values in process memory with optional TTLs.
type MemoryKV struct {
	items map[string]memoryItem
	mutex sync.RWMutex
	now   func() time.Time
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mutex.RLock()
	item, ok := m.items[key]
	m.mutex.RUnlock()

	if !ok {
		return "", ErrMiss
	}
	if !item.expires.IsZero() && m.now().After(item.expires) {
		m.mutex.Lock()
		delete(m.items, key)
		m.mutex.Unlock()
		return "", ErrMiss
	}
	return item.value, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = m.now().Add(ttl)
	}
	m.items[key] = memoryItem{value: value, expires: exp}
	return nil
}

func (m *MemoryKV) Del(_ context.Context, keys ...string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

// ScanKeys matches keys with path.Match, which agrees with Redis glob
// patterns for the '*' and '?' forms the store cache uses.
func (m *MemoryKV) ScanKeys(_ context.Context, pattern string) ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var keys []string
	for k := range m.items {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
