package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds all configuration
type Config struct {
	MySQL     MySQLConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Migrate   bool
	HTTPAddr  string
	// BaseURL is the public origin used to build verification URLs
	BaseURL         string
	StoreTimeoutSec int
}

// MySQLConfig holds MySQL configuration
type MySQLConfig struct {
	DSN string
}

// RedisConfig holds Redis configuration. Redis is optional: when Addr
// is empty the verify rate limiter is disabled.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig holds rate limiting configuration for the public
// verification endpoint
type RateLimitConfig struct {
	PerMinute int
}

// Load loads configuration from environment variables, with an optional
// INI file (CONFIG_FILE) underneath. Priority: ENV > INI > default.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	var iniFile *ini.File
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		f, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load INI file: %w", err)
		}
		iniFile = f
	}

	getValue := func(envKey, iniKey, defaultValue string) string {
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		if iniFile != nil {
			if value := iniFile.Section("").Key(iniKey).String(); value != "" {
				return value
			}
		}
		return defaultValue
	}

	getValueInt := func(envKey, iniKey string, defaultValue int) int {
		if value := getValue(envKey, iniKey, ""); value != "" {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getValue("MYSQL_DSN", "mysql_dsn", ""),
		},
		Redis: RedisConfig{
			Addr:     getValue("REDIS_ADDR", "redis_addr", ""),
			Password: getValue("REDIS_PASS", "redis_pass", ""),
			DB:       getValueInt("REDIS_DB", "redis_db", 0),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getValueInt("RATE_LIMIT_PER_MINUTE", "rate_limit_per_minute", 60),
		},
		Migrate:         getValue("MIGRATE", "migrate", "0") == "1",
		HTTPAddr:        getValue("HTTP_ADDR", "http_addr", ":8080"),
		BaseURL:         getValue("BASE_URL", "base_url", "http://localhost:8080"),
		StoreTimeoutSec: getValueInt("STORE_TIMEOUT_SEC", "store_timeout_sec", 5),
	}

	// Validate required fields
	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}

	return cfg, nil
}
