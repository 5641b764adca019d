package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/vxl-engine/internal/api"
	"github.com/annel0/vxl-engine/internal/config"
	"github.com/annel0/vxl-engine/internal/logging"
	"github.com/annel0/vxl-engine/internal/metrics"
	"github.com/annel0/vxl-engine/internal/netmap"
	"github.com/annel0/vxl-engine/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или ENV VXL_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("mapserver"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🗺️ Запуск VXL map-сервера...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	restAddr := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	metricsAddr := fmt.Sprintf(":%d", cfg.Server.GetMetricsPort())
	logging.Info("📡 Конфигурация сервера: REST=%s, Metrics=%s", restAddr, metricsAddr)

	// === МЕТРИКИ ===
	engineMetrics := metrics.NewEngineMetrics()
	engineMetrics.StartHTTP(metricsAddr)

	// === КАРТА ===
	grid, err := loadOrGenerateMap(cfg, engineMetrics)
	if err != nil {
		logging.Error("❌ Ошибка подготовки карты: %v", err)
		log.Fatalf("❌ Ошибка подготовки карты: %v", err)
	}

	// Первичный расчёт освещения
	world.UpdateShadows(grid)
	engineMetrics.ShadowPasses.Inc()
	logging.Info("✅ Карта готова: digest=%s, solid=%d, цветов=%d",
		world.Digest(grid), grid.SolidCount(), grid.ColorCount())

	// === REST API ===
	cache := netmap.NewMapCache(cfg.Transfer.GetCacheMaps())
	service := api.NewMapService(grid, cache, engineMetrics, cfg.Transfer.GetColumnsPerStep())
	restServer := api.NewRestServer(api.Config{
		Port:    restAddr,
		Service: service,
	})

	go func() {
		if err := restServer.Start(); err != nil {
			logging.Error("❌ Ошибка REST сервера: %v", err)
			os.Exit(1)
		}
	}()

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   🌐 REST API: http://localhost%s", restAddr)
	logging.Info("   📈 Метрики: http://localhost%s/metrics", metricsAddr)

	// Ожидание сигнала завершения
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logging.Info("👋 Завершение работы map-сервера")
}

// loadOrGenerateMap читает карту из файла или генерирует её по сиду.
func loadOrGenerateMap(cfg *config.Config, m *metrics.EngineMetrics) (*world.Grid, error) {
	if cfg.Map.Path != "" {
		logging.Info("📂 Загрузка карты из %s", cfg.Map.Path)
		data, err := os.ReadFile(cfg.Map.Path)
		if err != nil {
			return nil, err
		}
		grid, err := world.LoadVXL(data)
		if err != nil {
			return nil, err
		}
		m.MapsDecoded.Inc()
		return grid, nil
	}

	logging.Info("🌱 Генерация карты, сид=%d", cfg.Map.Seed)
	return world.NewMapBuilder(cfg.Map.Seed).Build(), nil
}
