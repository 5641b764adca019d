package api

import (
	"math/rand"
	"sync"

	"github.com/annel0/vxl-engine/internal/metrics"
	"github.com/annel0/vxl-engine/internal/netmap"
	"github.com/annel0/vxl-engine/internal/world"
)

// MapService сериализует доступ к миру: ядро не потокобезопасно,
// поэтому все операции HTTP-обработчиков идут через один мьютекс.
type MapService struct {
	mu      sync.Mutex
	grid    *world.Grid
	cache   *netmap.MapCache
	metrics *metrics.EngineMetrics

	columnsPerStep int
}

// NewMapService создаёт сервис над готовым миром.
func NewMapService(g *world.Grid, cache *netmap.MapCache, m *metrics.EngineMetrics, columnsPerStep int) *MapService {
	return &MapService{
		grid:           g,
		cache:          cache,
		metrics:        m,
		columnsPerStep: columnsPerStep,
	}
}

// Info возвращает digest и счётчики мира.
func (ms *MapService) Info() (digest string, solids, colors int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return world.Digest(ms.grid), ms.grid.SolidCount(), ms.grid.ColorCount()
}

// Download отдаёт полную карту, сжатую zlib, с учётом кеша.
func (ms *MapService) Download() (digest string, blob []byte, err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	digest = world.Digest(ms.grid)
	if cached, ok := ms.cache.Get(digest); ok {
		return digest, cached, nil
	}

	p, err := netmap.NewProgressive(ms.grid, false)
	if err != nil {
		return "", nil, err
	}
	p.SetColumnsPerStep(ms.columnsPerStep)

	ms.metrics.TransfersStarted.Inc()
	ms.metrics.TransfersInFlight.Inc()
	blob = p.ReadAll()
	ms.metrics.TransfersInFlight.Dec()
	ms.metrics.MapsEncoded.Inc()

	ms.cache.Add(digest, blob)
	return digest, blob, nil
}

// CheckSupport выполняет проверку опоры; при destroy сбрасывает кеш.
func (ms *MapService) CheckSupport(x, y, z int, destroy bool) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	n := world.CheckSupport(ms.grid, x, y, z, destroy)
	if destroy && n > 0 {
		ms.metrics.BlocksDestroyed.Add(float64(n))
		ms.cache.Reset()
	}
	return n
}

// UpdateShadows пересчитывает тени и сбрасывает кеш.
func (ms *MapService) UpdateShadows() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	world.UpdateShadows(ms.grid)
	ms.metrics.ShadowPasses.Inc()
	ms.cache.Reset()
	return world.Digest(ms.grid)
}

// RandomPoint выбирает случайную проходимую точку в прямоугольнике.
func (ms *MapService) RandomPoint(x1, y1, x2, y2 int) (int, int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return world.GetRandomPoint(ms.grid, x1, y1, x2, y2, rand.Float64(), rand.Float64())
}
