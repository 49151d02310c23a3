package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	SiteURL         string
	DefaultLocale   string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// AuthConfig holds the admin credentials used by the stateless fallback,
// the signing secret for stateless tokens and the session cookie settings.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int
	CookieSecure  bool
}

// HasEnvAdmin reports whether the stateless fallback can authenticate anyone.
func (c AuthConfig) HasEnvAdmin() bool {
	return c.AdminUsername != "" && c.AdminPassword != "" && c.SessionSecret != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

type BrokerConfig struct {
	URL   string
	Queue string
}

type SchedulerConfig struct {
	SessionSweep string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "teide-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SITE_URL", "https://www.teideexplorer.com")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TRUST_PROXY_HEADERS", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_CAPACITY", 20)
	viper.SetDefault("RATE_LIMIT_REFILL_TOKENS", 1)
	viper.SetDefault("RATE_LIMIT_REFILL_INTERVAL_MS", 3000)
	viper.SetDefault("RATE_LIMIT_TTL_SECONDS", 600)
	viper.SetDefault("RATE_LIMIT_PREFIX", "rl")
	viper.SetDefault("BOOKING_EVENTS_QUEUE", "booking.created")
	viper.SetDefault("SESSION_SWEEP_CRON", "@every 1h")

	// .env is optional; containers usually pass plain environment variables
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			SiteURL:         viper.GetString("SITE_URL"),
			DefaultLocale:   viper.GetString("DEFAULT_LOCALE"),
			CORSOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout: time.Duration(viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,

			TrustProxyHeaders: viper.GetBool("TRUST_PROXY_HEADERS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			AdminUsername: viper.GetString("ADMIN_USERNAME"),
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
			SessionSecret: viper.GetString("SESSION_SECRET"),
			SessionTTL:    time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			BcryptCost:    viper.GetInt("BCRYPT_COST"),
			CookieSecure:  viper.GetBool("COOKIE_SECURE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:        viper.GetBool("RATE_LIMIT_ENABLED"),
			Capacity:       viper.GetInt("RATE_LIMIT_CAPACITY"),
			RefillTokens:   viper.GetInt("RATE_LIMIT_REFILL_TOKENS"),
			RefillInterval: time.Duration(viper.GetInt("RATE_LIMIT_REFILL_INTERVAL_MS")) * time.Millisecond,
			TTL:            time.Duration(viper.GetInt("RATE_LIMIT_TTL_SECONDS")) * time.Second,
			Prefix:         viper.GetString("RATE_LIMIT_PREFIX"),
		},
		Broker: BrokerConfig{
			URL:   viper.GetString("RABBITMQ_URL"),
			Queue: viper.GetString("BOOKING_EVENTS_QUEUE"),
		},
		Scheduler: SchedulerConfig{
			SessionSweep: viper.GetString("SESSION_SWEEP_CRON"),
		},
	}

	return config, nil
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
