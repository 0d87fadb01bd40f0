package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Session      SessionConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Notification NotificationConfig
	Fixtures     FixturesConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig signs the cookie that carries the selected role and view.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
	CookieName string
	Secure     bool
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig bounds report submissions per client. Zero disables the limit.
type RateLimitConfig struct {
	ReportsPerDay int
	KeyPrefix     string
}

// NotificationConfig sizes the in-memory notification feed.
type NotificationConfig struct {
	FeedSize int
}

// FixturesConfig selects the synthetic data set.
type FixturesConfig struct {
	// Path overrides the embedded fixture file when set.
	Path string
	// Seed drives the placeholder random generators. Zero means time based.
	Seed int64
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	seed, err := strconv.ParseInt(getEnv("FIXTURES_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FIXTURES_SEED: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "nagarseva"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev-secret"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 720),
			CookieName: getEnv("SESSION_COOKIE_NAME", "nagarseva_shell"),
			Secure:     getEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		RateLimit: RateLimitConfig{
			ReportsPerDay: getEnvAsInt("RATE_LIMIT_REPORTS_PER_DAY", 50),
			KeyPrefix:     getEnv("RATE_LIMIT_KEY_PREFIX", "nagarseva:reports"),
		},
		Notification: NotificationConfig{
			FeedSize: getEnvAsInt("NOTIFY_FEED_SIZE", 20),
		},
		Fixtures: FixturesConfig{
			Path: os.Getenv("FIXTURES_PATH"),
			Seed: seed,
		},
	}

	if cfg.App.Env == "production" && cfg.Session.Secret == "dev-secret" {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns how long a shell session cookie stays valid.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
