package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "gallery.db"
	defaultSessionSecret   = "change-me-session-secret"
	defaultCookieSecure    = "false"
	defaultCurrency        = "INR"
	defaultHoursStale      = "5m"
	defaultHoursExpire     = "1h"
	defaultDaysStale       = "1h"
	defaultDaysExpire      = "24h"
	defaultShutdownTimeout = "10s"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	SessionSecret   string
	CookieSecure    bool
	DefaultCurrency string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// "hours" profile: volatile collections (artwork listings, details)
	HoursStale  time.Duration
	HoursExpire time.Duration
	// "days" profile: stable collections (artist listing)
	DaysStale  time.Duration
	DaysExpire time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure) || cfg.IsProduction()
	cfg.DefaultCurrency = strings.ToUpper(strings.TrimSpace(getEnv("DEFAULT_CURRENCY", defaultCurrency)))
	cfg.AllowedOrigins = parseListEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	var err error
	if cfg.HoursStale, err = parseDurationEnv("CACHE_HOURS_STALE", defaultHoursStale); err != nil {
		return nil, err
	}
	if cfg.HoursExpire, err = parseDurationEnv("CACHE_HOURS_EXPIRE", defaultHoursExpire); err != nil {
		return nil, err
	}
	if cfg.DaysStale, err = parseDurationEnv("CACHE_DAYS_STALE", defaultDaysStale); err != nil {
		return nil, err
	}
	if cfg.DaysExpire, err = parseDurationEnv("CACHE_DAYS_EXPIRE", defaultDaysExpire); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.DefaultCurrency != "INR" && cfg.DefaultCurrency != "USD" {
		return fmt.Errorf("DEFAULT_CURRENCY must be one of: INR, USD")
	}
	if cfg.HoursStale <= 0 || cfg.HoursExpire < cfg.HoursStale {
		return fmt.Errorf("CACHE_HOURS_STALE must be > 0 and <= CACHE_HOURS_EXPIRE")
	}
	if cfg.DaysStale <= 0 || cfg.DaysExpire < cfg.DaysStale {
		return fmt.Errorf("CACHE_DAYS_STALE must be > 0 and <= CACHE_DAYS_EXPIRE")
	}
	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.SessionSecret == defaultSessionSecret {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func parseListEnv(name, fallback string) []string {
	var out []string
	for _, o := range strings.Split(getEnv(name, fallback), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
