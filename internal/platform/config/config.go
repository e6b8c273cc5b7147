package config

import (
	"errors"
	"fmt"
	"time"
)

// Config es la configuración completa del servicio.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (h HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", h.Port)
}

// DatabaseConfig: si DSN está vacío se usa el catálogo en memoria.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// CatalogConfig: archivo JSON del catálogo. Vacío = catálogo seed embebido.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http.port must be in 1..65535, got %d", ErrInvalidConfig, c.HTTP.Port)
	}
	if c.HTTP.ReadTimeout <= 0 {
		return fmt.Errorf("%w: http.read_timeout must be positive", ErrInvalidConfig)
	}
	if c.HTTP.WriteTimeout <= 0 {
		return fmt.Errorf("%w: http.write_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
