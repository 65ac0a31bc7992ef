package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/txtread/internal/parser"
)

type Config struct {
	Port string

	// Auth for /api and /ws; empty disables it.
	APIKey string

	// Settings store. A non-empty PathstoreURL selects the remote store.
	SettingsFile     string
	PathstoreURL     string
	PathstoreAPIKey  string
	PathstorePrefix  string
	PathstoreTimeout time.Duration

	// Seed values written into the store at startup when set.
	SeedFilePath string
	SeedPageSize int

	// Document loading
	Encoding        string
	DefaultPageSize int
	MaxFileBytes    int64

	// Event loop
	QueueSize int

	// Terminal reader log destination; empty discards.
	LogFile string
	Debug   bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("TXTREAD_API_KEY"),

		SettingsFile:     envOr("TXTREAD_SETTINGS_FILE", "txtread-settings.json"),
		PathstoreURL:     os.Getenv("PATHSTORE_URL"),
		PathstoreAPIKey:  os.Getenv("PATHSTORE_API_KEY"),
		PathstorePrefix:  envOr("PATHSTORE_PREFIX", "txtread/settings"),
		PathstoreTimeout: envDuration("PATHSTORE_TIMEOUT", 10*time.Second),

		SeedFilePath: os.Getenv("TXTREAD_FILE_PATH"),
		SeedPageSize: envInt("TXTREAD_PAGE_SIZE", 0),

		Encoding:        envOr("TXTREAD_ENCODING", "utf-8"),
		DefaultPageSize: envInt("TXTREAD_DEFAULT_PAGE_SIZE", 1000),
		MaxFileBytes:    envInt64("TXTREAD_MAX_FILE_BYTES", 64<<20), // 64MB

		QueueSize: envInt("TXTREAD_QUEUE_SIZE", 64),

		LogFile: os.Getenv("TXTREAD_LOG_FILE"),
		Debug:   envBool("TXTREAD_DEBUG", false),
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 1000
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = 64 << 20
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.PathstoreTimeout <= 0 {
		cfg.PathstoreTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.PathstoreURL != "" && c.PathstoreAPIKey == "" {
		return fmt.Errorf("PATHSTORE_API_KEY is required when PATHSTORE_URL is set")
	}
	if c.PathstoreURL == "" && c.SettingsFile == "" {
		return fmt.Errorf("TXTREAD_SETTINGS_FILE is required")
	}
	if c.SeedPageSize < 0 {
		return fmt.Errorf("TXTREAD_PAGE_SIZE must be positive")
	}
	if _, err := parser.NewTextParser(c.Encoding); err != nil {
		return fmt.Errorf("TXTREAD_ENCODING: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
