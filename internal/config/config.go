package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации map-сервера.

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Map      MapConfig      `yaml:"map"`
	Transfer TransferConfig `yaml:"transfer"`
}

type ServerConfig struct {
	RESTPort    int `yaml:"rest_port"`
	MetricsPort int `yaml:"metrics_port"`
}

type MapConfig struct {
	Path string `yaml:"path"` // путь к .vxl; пусто — генерировать
	Seed int64  `yaml:"seed"` // сид генератора при отсутствии файла
}

type TransferConfig struct {
	ColumnsPerStep int `yaml:"columns_per_step"` // столбцов на порцию потока
	CacheMaps      int `yaml:"cache_maps"`       // сколько сжатых карт держать в кеше
}

// GetRESTPort возвращает REST порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "VXL_REST_PORT", 8088)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "VXL_METRICS_PORT", 2112)
}

// GetColumnsPerStep возвращает размер порции потока (минимум 1)
func (t *TransferConfig) GetColumnsPerStep() int {
	if t.ColumnsPerStep > 0 {
		return t.ColumnsPerStep
	}
	return 2048
}

// GetCacheMaps возвращает ёмкость кеша карт (минимум 1)
func (t *TransferConfig) GetCacheMaps() int {
	if t.CacheMaps > 0 {
		return t.CacheMaps
	}
	return 1
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VXL_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VXL_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
