package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Postgres PostgresConfig
	HTTP     HTTPConfig
	Sheet    SheetConfig
	Logging  LoggingConfig
}

type DatabaseConfig struct {
	Driver       string
	MaxOpenConns int
	MaxIdleConns int
}

type SQLiteConfig struct {
	Path string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type SheetConfig struct {
	ProfileID string
}

type LoggingConfig struct {
	Level string
	File  string
}

// Addr is the listen address for the HTTP server.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", constants.DatabaseConfig.MaxOpenConns),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", constants.DatabaseConfig.MaxIdleConns),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "data/akin.db"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "akin"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "biblioteca"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host:           getEnv("HTTP_ADDR", "0.0.0.0"),
			Port:           getEnvInt("PORT", 3000),
			AllowedOrigins: parseCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Sheet: SheetConfig{
			ProfileID: getEnv("PROFILE_ID", domain.DefaultProfileID),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	case DriverPostgres:
		if c.Postgres.Host == "" {
			return fmt.Errorf("POSTGRES_HOST is required when DB_DRIVER=postgres")
		}
		if c.Postgres.Database == "" {
			return fmt.Errorf("POSTGRES_DB is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if strings.TrimSpace(c.Sheet.ProfileID) == "" {
		return fmt.Errorf("PROFILE_ID must not be empty")
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
