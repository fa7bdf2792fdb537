// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Ledger   LedgerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName          string        `envconfig:"DB_NAME" default:"personalbank"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

// RedisConfig holds the Redis connection used for distributed account locks.
// An empty Addr means locks are held in-process.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// KafkaConfig holds ledger event publishing configuration.
// No brokers means events are not published.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"ledger.transactions"`
}

// LedgerConfig holds ledger engine tuning
type LedgerConfig struct {
	OperationTimeout      time.Duration `envconfig:"LEDGER_OPERATION_TIMEOUT" default:"5s"`
	LockTTL               time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	LockWait              time.Duration `envconfig:"LOCK_WAIT" default:"3s"`
	AccountNumberAttempts int           `envconfig:"ACCOUNT_NUMBER_ATTEMPTS" default:"5"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`  // debug, info, warn, error
	Format string `envconfig:"LOG_FORMAT" default:"json"` // json, text
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Ledger.OperationTimeout <= 0 {
		return fmt.Errorf("ledger operation timeout must be positive")
	}
	if c.Ledger.LockWait <= 0 {
		return fmt.Errorf("lock wait must be positive")
	}
	if c.Ledger.LockTTL < c.Ledger.OperationTimeout {
		return fmt.Errorf("lock ttl (%s) must be >= operation timeout (%s)", c.Ledger.LockTTL, c.Ledger.OperationTimeout)
	}
	if c.Ledger.AccountNumberAttempts < 1 {
		return fmt.Errorf("account number attempts must be at least 1")
	}

	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic cannot be empty when brokers are configured")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
