package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
	Reminder ReminderConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
	// NotesKey is a Fernet key used to encrypt bond notes at rest.
	// Notes are stored in plain text when empty.
	NotesKey string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// ReminderConfig controls the upcoming payment digest
type ReminderConfig struct {
	Enabled    bool
	Schedule   string // cron spec, minute resolution
	WindowDays int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	windowDays, err := strconv.Atoi(getEnv("REMINDER_WINDOW_DAYS", "7"))
	if err != nil || windowDays <= 0 {
		return nil, fmt.Errorf("REMINDER_WINDOW_DAYS must be a positive integer: %q", os.Getenv("REMINDER_WINDOW_DAYS"))
	}

	reminderEnabled, err := strconv.ParseBool(getEnv("REMINDER_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("REMINDER_ENABLED must be a boolean: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", "./data/bond_portfolio.db"),
			NotesKey: os.Getenv("NOTES_ENCRYPTION_KEY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Reminder: ReminderConfig{
			Enabled:    reminderEnabled,
			Schedule:   getEnv("REMINDER_SCHEDULE", "0 8 * * *"),
			WindowDays: windowDays,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
