package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultRateLimit is the rate applied when RATE_LIMIT is unset or cannot
// be parsed.
const DefaultRateLimit = "100-M"

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CORS
	AllowedOrigins []string

	// Caching. One switch governs both caches; TTL and size are per cache.
	CacheEnabled            bool
	CurrencyCacheTTL        time.Duration
	CurrencyCacheMaxSize    int
	IdempotencyCacheTTL     time.Duration
	IdempotencyCacheMaxSize int

	// Rate limiting, in ulule/limiter format (e.g. "100-M").
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200")
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_CURRENCY_TTL", "10m")
	viper.SetDefault("CACHE_CURRENCY_MAX_SIZE", 100)
	viper.SetDefault("CACHE_IDEMPOTENCY_TTL", "24h")
	viper.SetDefault("CACHE_IDEMPOTENCY_MAX_SIZE", 10000)
	viper.SetDefault("RATE_LIMIT", DefaultRateLimit)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.AllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")

	cfg.CacheEnabled = viper.GetBool("CACHE_ENABLED")
	cfg.CurrencyCacheTTL = parseDurationOrDefault("CACHE_CURRENCY_TTL", 10*time.Minute)
	cfg.CurrencyCacheMaxSize = viper.GetInt("CACHE_CURRENCY_MAX_SIZE")
	cfg.IdempotencyCacheTTL = parseDurationOrDefault("CACHE_IDEMPOTENCY_TTL", 24*time.Hour)
	cfg.IdempotencyCacheMaxSize = viper.GetInt("CACHE_IDEMPOTENCY_MAX_SIZE")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

func parseDurationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}
