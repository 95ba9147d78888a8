package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"holidaze/internal/api"
)

// ErrParsingConfig wraps environment parsing failures.
var ErrParsingConfig = errors.New("app: parse config")

// Config holds runtime wiring options for building the app.
type Config struct {
	APIBase string `env:"HOLIDAZE_API_BASE"` // API base URL; defaults to api.DefaultBaseURL
	APIKey  string `env:"HOLIDAZE_API_KEY"`  // sent as X-Noroff-API-Key
	Home    string `env:"HOLIDAZE_HOME"`     // config directory, e.g. $HOME/.holidaze

	Env      string `env:"HOLIDAZE_ENV" envDefault:"development"`
	LogLevel string `env:"HOLIDAZE_LOG_LEVEL"`

	HTTPTimeout time.Duration `env:"HOLIDAZE_HTTP_TIMEOUT" envDefault:"15s"`
	RateLimit   float64       `env:"HOLIDAZE_RATE_LIMIT" envDefault:"5"` // requests per second; 0 disables
	RateBurst   int           `env:"HOLIDAZE_RATE_BURST" envDefault:"10"`
	PageSize    int           `env:"HOLIDAZE_PAGE_SIZE" envDefault:"12"`

	StorePassphrase string `env:"HOLIDAZE_STORE_PASSPHRASE"` // seals the token at rest when set

	RedisURL     string        `env:"HOLIDAZE_REDIS_URL"` // booked-date cache; in-memory when empty
	RedisTimeout time.Duration `env:"HOLIDAZE_REDIS_TIMEOUT" envDefault:"5s"`
	CacheTTL     time.Duration `env:"HOLIDAZE_CACHE_TTL" envDefault:"10m"`
	CacheSize    int           `env:"HOLIDAZE_CACHE_SIZE" envDefault:"256"`

	DevAPIAddr string `env:"HOLIDAZE_DEVAPI_ADDR" envDefault:"127.0.0.1:8080"`
}

// LoadConfig reads a .env file from the working directory when present, then
// the environment. Unset paths get their defaults.
func LoadConfig() (Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.APIBase == "" {
		cfg.APIBase = api.DefaultBaseURL
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home: %w", err)
		}
		cfg.Home = filepath.Join(dir, ".holidaze")
	}
	if cfg.CacheSize < 1 {
		cfg.CacheSize = 1
	}
	return cfg, nil
}
