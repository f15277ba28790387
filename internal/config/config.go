package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/validation"
)

// Config holds the whole application configuration,
// populated from environment variables
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Validation ValidationConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

// DatabaseConfig selects the store. Postgres settings live in Postgres and
// are only read when Driver is postgres.
type DatabaseConfig struct {
	Driver      string // postgres, sqlite3
	SQLitePath  string
	AutoMigrate bool
	Postgres    *database.DBConfig
}

// =====================================================
// VALIDATION CONFIGURATION
// =====================================================

// ValidationConfig picks the name/title length policy.
// MinLength and MaxLength override the strict bounds when set.
type ValidationConfig struct {
	NamePolicy string // strict, relaxed
	MinLength  int
	MaxLength  int
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	pg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(getEnv("DB_DRIVER", database.DriverPostgres)),
			SQLitePath:  getEnv("DB_SQLITE_PATH", "catalog.db"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
			Postgres:    pg,
		},
		Validation: ValidationConfig{
			NamePolicy: getEnv("NAME_POLICY", validation.PolicyStrict),
			MinLength:  getEnvInt("NAME_MIN_LENGTH", 0),
			MaxLength:  getEnvInt("NAME_MAX_LENGTH", 0),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if _, err := database.DialectFor(c.Database.Driver); err != nil {
		return err
	}
	if _, err := c.Validation.LengthPolicy(); err != nil {
		return err
	}

	// Production postgres must have a password
	if c.App.Environment == "production" && c.Database.Driver == database.DriverPostgres {
		if c.Database.Postgres == nil || c.Database.Postgres.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// LengthPolicy resolves the configured policy. Overrides apply to the strict
// policy only; relaxed always means non-empty.
func (v ValidationConfig) LengthPolicy() (validation.LengthPolicy, error) {
	policy, err := validation.ParsePolicy(v.NamePolicy)
	if err != nil {
		return validation.LengthPolicy{}, err
	}
	if !policy.Bounded() {
		return policy, nil
	}

	if v.MinLength > 0 {
		policy.Min = v.MinLength
	}
	if v.MaxLength > 0 {
		policy.Max = v.MaxLength
	}
	if v.MinLength < 0 || v.MaxLength < 0 || policy.Min > policy.Max {
		return validation.LengthPolicy{}, fmt.Errorf("invalid name length bounds: min %d, max %d", policy.Min, policy.Max)
	}
	return policy, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
