package netmap

import "sync"

// MapCache хранит готовые сжатые карты по их digest, вытесняя самую
// старую запись при переполнении.
type MapCache struct {
	mu      sync.Mutex
	maxMaps int
	order   []string
	cache   map[string][]byte
}

// NewMapCache создаёт кеш на maxMaps карт (минимум одна).
func NewMapCache(maxMaps int) *MapCache {
	if maxMaps < 1 {
		maxMaps = 1
	}
	return &MapCache{
		maxMaps: maxMaps,
		cache:   make(map[string][]byte),
	}
}

// Add кладёт блоб карты под её digest.
func (mc *MapCache) Add(hash string, data []byte) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.cache[hash]; exists {
		mc.cache[hash] = data
		return
	}
	if len(mc.cache) >= mc.maxMaps {
		oldest := mc.order[0]
		mc.order = mc.order[1:]
		delete(mc.cache, oldest)
	}
	mc.cache[hash] = data
	mc.order = append(mc.order, hash)
}

// Get возвращает блоб карты и признак попадания.
func (mc *MapCache) Get(hash string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	data, ok := mc.cache[hash]
	return data, ok
}

// Has сообщает, есть ли карта в кеше.
func (mc *MapCache) Has(hash string) bool {
	_, ok := mc.Get(hash)
	return ok
}

// Reset очищает кеш.
func (mc *MapCache) Reset() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.cache = make(map[string][]byte)
	mc.order = nil
}
