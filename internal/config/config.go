package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	APIBaseURL   string
	CDNBaseURL   string
	DBPath       string
	ServerPort   string
	LogLevel     string
	DefaultPatch string
	CacheTTL     time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		APIBaseURL:   getEnv("AD_API_BASE_URL", "https://abilitydraftstats.com"),
		CDNBaseURL:   getEnv("AD_CDN_BASE_URL", "https://cdn.abilitydraftstats.com/img"),
		DBPath:       getEnv("DB_PATH", "adstats.db"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DefaultPatch: getEnv("DEFAULT_PATCH", "7.39"),
		CacheTTL:     5 * time.Minute,
	}

	logger.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("default_patch", cfg.DefaultPatch).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
