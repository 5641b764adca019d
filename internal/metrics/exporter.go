package metrics

import (
	"net/http"

	"github.com/annel0/vxl-engine/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineMetrics инкапсулирует Prometheus-метрики движка карты.
// Ядро (internal/world) метрик не знает — счётчики инкрементируют
// обвязки: REST-слой (MapService) и стартовый код сервера.
type EngineMetrics struct {
	MapsDecoded       prometheus.Counter
	MapsEncoded       prometheus.Counter
	BlocksDestroyed   prometheus.Counter
	ShadowPasses      prometheus.Counter
	TransfersStarted  prometheus.Counter
	TransfersInFlight prometheus.Gauge
}

// NewEngineMetrics создаёт и регистрирует метрики в глобальном регистре.
func NewEngineMetrics() *EngineMetrics {
	m := &EngineMetrics{
		MapsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vxl",
			Name:      "maps_decoded_total",
			Help:      "Сколько раз карта декодировалась из формата .vxl.",
		}),
		MapsEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vxl",
			Name:      "maps_encoded_total",
			Help:      "Сколько раз карта кодировалась в формат .vxl.",
		}),
		BlocksDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vxl",
			Name:      "blocks_destroyed_total",
			Help:      "Вокселей, разрушенных проверкой опоры.",
		}),
		ShadowPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vxl",
			Name:      "shadow_passes_total",
			Help:      "Выполненных пересчётов теней.",
		}),
		TransfersStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vxl",
			Name:      "transfers_started_total",
			Help:      "Начатых потоковых передач карты.",
		}),
		TransfersInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vxl",
			Name:      "transfers_inflight",
			Help:      "Активных потоковых передач карты.",
		}),
	}

	prometheus.MustRegister(
		m.MapsDecoded, m.MapsEncoded, m.BlocksDestroyed,
		m.ShadowPasses, m.TransfersStarted, m.TransfersInFlight,
	)
	return m
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий: HTTP-сервер стартует в отдельной горутине.
func (m *EngineMetrics) StartHTTP(addr string) {
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}
