package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
	RoutePrefix  string        `env:"ADMIN_ROUTE_PREFIX" env-default:"admin"`

	// Database configuration
	DBHost              string        `env:"DB_HOST" env-default:"localhost"`
	DBPort              int           `env:"DB_PORT" env-default:"5432"`
	DBUser              string        `env:"DB_USER" env-default:"postgres"`
	DBPassword          string        `env:"DB_PASSWORD" env-default:"postgres"`
	DBName              string        `env:"DB_NAME" env-default:"news_crud"`
	DBSSLMode           string        `env:"DB_SSL_MODE" env-default:"disable"`
	DBMaxConns          int32         `env:"DB_MAX_CONNS" env-default:"25"`
	DBMinConns          int32         `env:"DB_MIN_CONNS" env-default:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" env-default:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" env-default:"1m"`

	// Migrations
	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"./migrations"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" env-default:"false"`

	// Admin configuration
	AdminJWTSecret  string `env:"ADMIN_JWT_SECRET"`
	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE" env-default:"25"`
	MaxPageSize     int    `env:"MAX_PAGE_SIZE" env-default:"100"`
	FetchPageSize   int    `env:"FETCH_PAGE_SIZE" env-default:"10"`

	// RabbitMQ configuration; events are disabled when the URI is empty
	RabbitURI        string `env:"RABBIT_URI"`
	RabbitExchange   string `env:"RABBIT_EXCHANGE" env-default:"news.articles"`
	RabbitRoutingKey string `env:"RABBIT_ROUTING_KEY" env-default:"article"`

	// MongoDB audit trail; disabled when the URI is empty
	MongoURI        string `env:"MONGO_URI"`
	MongoDBName     string `env:"MONGO_DB_NAME" env-default:"news_crud"`
	MongoCollection string `env:"MONGO_AUDIT_COLLECTION" env-default:"article_revisions"`

	// S3/MinIO media storage; uploads are disabled when the endpoint is empty
	S3Endpoint      string        `env:"S3_ENDPOINT"`
	S3AccessKey     string        `env:"S3_ACCESS_KEY"`
	S3SecretKey     string        `env:"S3_SECRET_KEY"`
	S3Bucket        string        `env:"S3_BUCKET" env-default:"news-media"`
	S3PublicBaseURL string        `env:"S3_PUBLIC_BASE_URL"`
	S3PresignTTL    time.Duration `env:"S3_PRESIGN_TTL" env-default:"15m"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DSN returns the PostgreSQL connection URL used by golang-migrate.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE must not be lower than DEFAULT_PAGE_SIZE")
	}
	if c.FetchPageSize < 1 {
		return fmt.Errorf("FETCH_PAGE_SIZE must be at least 1")
	}
	if c.S3Endpoint != "" && (c.S3AccessKey == "" || c.S3SecretKey == "") {
		return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_ENDPOINT is set")
	}
	return nil
}
