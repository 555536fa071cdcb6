package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Confirm    ConfirmConfig
	Email      EmailConfig
	Admin      AdminConfig
	Pagination PaginationConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // hours
}

// ConfirmConfig configures the signup confirmation-code generator.
type ConfirmConfig struct {
	Secret string
	TTL    int // hours
}

type EmailConfig struct {
	SMTPHost string // empty = log-only delivery (development)
	SMTPPort string
	From     string
}

// AdminConfig describes the bootstrap superuser created at startup
// when no row with that username exists yet.
type AdminConfig struct {
	Username string
	Email    string
}

type PaginationConfig struct {
	PageSize int // default page size for every list endpoint
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "TitleDB API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY_HOURS", 24),
		},
		Confirm: ConfirmConfig{
			Secret: getEnv("CONFIRMATION_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production")),
			TTL:    getEnvInt("CONFIRMATION_TTL_HOURS", 72),
		},
		Email: EmailConfig{
			SMTPHost: getEnv("SMTP_HOST", ""),
			SMTPPort: getEnv("SMTP_PORT", "25"),
			From:     getEnv("EMAIL_FROM", "noreply@titledb.dev"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Email:    getEnv("ADMIN_EMAIL", ""),
		},
		Pagination: PaginationConfig{
			PageSize: getEnvInt("PAGE_SIZE", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST must be set in production")
		}
	}

	if c.Pagination.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}

	return nil
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
