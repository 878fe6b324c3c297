package hearts

import (
	"sync"
	"time"
)

// Prefs is a small persistent key-value store of integers.
// Reads of a missing key return def. Implementations report their own
// failures (by logging) so callers can treat the store as infallible.
type Prefs interface {
	GetInt(key string, def int) int
	GetLong(key string, def int64) int64
	PutInt(key string, value int)
	PutLong(key string, value int64)
	Remove(key string)
}

// MemoryPrefs is an in-process Prefs, used by tests and as a fallback when the
// database cannot be opened.
type MemoryPrefs struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewMemoryPrefs creates an empty store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]int64)}
}

func (m *MemoryPrefs) GetInt(key string, def int) int {
	return int(m.GetLong(key, int64(def)))
}

func (m *MemoryPrefs) GetLong(key string, def int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

func (m *MemoryPrefs) PutInt(key string, value int) {
	m.PutLong(key, int64(value))
}

func (m *MemoryPrefs) PutLong(key string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryPrefs) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Has reports whether key is set.
func (m *MemoryPrefs) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
