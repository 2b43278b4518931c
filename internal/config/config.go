package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Roster   RosterConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// RosterConfig identifies the fixed weekday assignees for the roster
// generator: the manager takes every morning shift and the designated
// full-timer every midday shift.
type RosterConfig struct {
	ManagerEmail string
}

// PayrollConfig controls the daily payroll job.
type PayrollConfig struct {
	RunHour int // local hour of day at which the job processes yesterday
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "roster"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Roster = RosterConfig{
		ManagerEmail: getEnv("ROSTER_MANAGER_EMAIL", "manager@example.com"),
	}

	payrollHour, err := strconv.Atoi(getEnv("PAYROLL_RUN_HOUR", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RUN_HOUR: %w", err)
	}
	if payrollHour < 0 || payrollHour > 23 {
		return nil, fmt.Errorf("PAYROLL_RUN_HOUR must be 0-23, got %d", payrollHour)
	}
	config.Payroll = PayrollConfig{RunHour: payrollHour}

	return config, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host,
		c.Database.Port, c.Database.Name, c.Database.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
