package configs

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting the backend reads from the environment.
type Config struct {
	Environment string `env:"APP_ENV,default=development"`
	Port        string `env:"PORT,default=3000"`

	// DATABASE_URL wins over the DB_* parts when both are set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE,default=require"`
	AutoMigrate bool   `env:"AUTO_MIGRATE,default=true"`

	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT,default=5s"`
	CorsAllowOrigins string        `env:"CORS_ALLOW_ORIGINS,default=http://localhost:5173"`
	RateLimitMax     int           `env:"RATE_LIMIT_MAX,default=30"`
	RateLimitWindow  time.Duration `env:"RATE_LIMIT_WINDOW,default=1m"`
	MetricsEnabled   bool          `env:"METRICS_ENABLED,default=true"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	ResendAPIKey        string `env:"RESEND_API_KEY"`
	NotifyFrom          string `env:"NOTIFY_FROM,default=Gloop Club <onboarding@resend.dev>"`
	NotifyTo            string `env:"NOTIFY_TO,default=gloopclubs@gmail.com"`
	NotifyFailurePolicy string `env:"NOTIFY_FAILURE_POLICY,default=log"`
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env (outside Railway) and decodes the environment into a Config.
func LoadEnv() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.Info("⚠️ no .env file found, using system environment")
		} else {
			logrus.Info("✅ .env file loaded")
		}
	} else {
		logrus.Info("🚀 running in Railway, using system environment")
	}
	return Decode()
}

// Decode reads the current process environment without touching .env.
func Decode() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.NotifyFailurePolicy {
	case "log", "fail":
	default:
		return fmt.Errorf("NOTIFY_FAILURE_POLICY must be log or fail, got %q", c.NotifyFailurePolicy)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.RequestTimeout < 0 {
		return errors.New("REQUEST_TIMEOUT must not be negative")
	}
	return nil
}

// DSN returns DATABASE_URL or one assembled from the DB_* parts.
func (c *Config) DSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}, "application_name": {"gloopclub"}}.Encode(),
	}
	return u.String()
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
