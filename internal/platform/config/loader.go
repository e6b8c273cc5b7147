package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Variables de entorno históricas del servicio -> claves de config.
var envBindings = map[string]string{
	"app.name":           "APP_NAME",
	"app.environment":    "APP_ENVIRONMENT",
	"http.port":          "PORT",
	"http.read_timeout":  "HTTP_READ_TIMEOUT",
	"http.write_timeout": "HTTP_WRITE_TIMEOUT",
	"database.dsn":       "DB_DSN",
	"catalog.path":       "CATALOG_PATH",
	"logging.level":      "LOG_LEVEL",
	"logging.format":     "LOG_FORMAT",
	"metrics.enabled":    "METRICS_ENABLED",
}

type LoadOptions struct {
	// Directorios donde buscar config.yaml. Default: ./configs y .
	ConfigPaths []string
	// Archivo .env opcional. Default: .env
	EnvFile string
}

// Load lee (en orden de prioridad creciente) defaults, config.yaml, .env y env vars.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// .env es opcional; godotenv no pisa variables ya seteadas.
	_ = godotenv.Load(envFile)

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	paths := opts.ConfigPaths
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Logging.Level = strings.TrimSpace(cfg.Logging.Level)
	cfg.Logging.Format = strings.TrimSpace(cfg.Logging.Format)
	cfg.Database.DSN = strings.TrimSpace(cfg.Database.DSN)
	cfg.Catalog.Path = strings.TrimSpace(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pet-shelter-adoption")
	v.SetDefault("app.environment", "development")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", "5s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("database.dsn", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("metrics.enabled", true)
}
