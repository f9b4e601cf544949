// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pricecompare/internal/logging"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

type Server struct {
	Port            string
	AppEnv          string
	CatalogSource   string
	DatabaseDSN     string
	EnableHSTS      bool
	ShutdownTimeout time.Duration
	Logger          logging.Config
}

// Addr is the listen address for Port.
func (s Server) Addr() string {
	return ":" + s.Port
}

type Client struct {
	BaseURL          string
	MinSearchDisplay time.Duration
	Logger           logging.Config
}

// LoadEnvFiles loads .env and .env.local. Variables already present in the
// process environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func LoadServer() (Server, error) {
	appEnv := getEnv("APP_ENV", EnvDevelopment)
	cfg := Server{
		Port:            getEnv("PORT", "5000"),
		AppEnv:          appEnv,
		CatalogSource:   strings.ToLower(getEnv("CATALOG_SOURCE", SourceSeed)),
		DatabaseDSN:     getEnv("DB_DSN", ""),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		Logger:          loggerConfig(appEnv),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Server{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	switch cfg.CatalogSource {
	case SourceSeed:
	case SourcePostgres:
		if cfg.DatabaseDSN == "" {
			return Server{}, fmt.Errorf("DB_DSN is required when CATALOG_SOURCE=%s", SourcePostgres)
		}
	default:
		return Server{}, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
	return cfg, nil
}

func LoadClient() Client {
	return Client{
		BaseURL:          strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		MinSearchDisplay: time.Duration(getEnvInt("MIN_SEARCH_DISPLAY_MS", 500)) * time.Millisecond,
		Logger:           loggerConfig(getEnv("APP_ENV", EnvProduction)),
	}
}

func loggerConfig(appEnv string) logging.Config {
	dev := appEnv == EnvDevelopment
	encoding := "json"
	level := "info"
	if dev {
		encoding = "console"
		level = "debug"
	}
	return logging.Config{
		Level:             getEnv("LOG_LEVEL", level),
		Encoding:          getEnv("LOG_ENCODING", encoding),
		DisableCaller:     getEnvBool("LOG_DISABLE_CALLER", false),
		DisableStacktrace: getEnvBool("LOG_DISABLE_STACKTRACE", !dev),
		Development:       dev,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
