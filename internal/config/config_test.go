package config_test

import (
	"reflect"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/config"
)

// clearEnv blanks every variable Load reads so host settings do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST", "DB_PATH", "NOTES_ENCRYPTION_KEY",
		"CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
		"REMINDER_ENABLED", "REMINDER_SCHEDULE", "REMINDER_WINDOW_DAYS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load()

		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected addr localhost:5001, got %q", cfg.Server.Addr)
		}
		if cfg.Database.Path != "./data/bond_portfolio.db" || cfg.Database.NotesKey != "" {
			t.Errorf("Unexpected database config: %+v", cfg.Database)
		}
		if !cfg.Reminder.Enabled || cfg.Reminder.Schedule != "0 8 * * *" || cfg.Reminder.WindowDays != 7 {
			t.Errorf("Unexpected reminder config: %+v", cfg.Reminder)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Expected log level info, got %q", cfg.Log.Level)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
		t.Setenv("REMINDER_ENABLED", "false")
		t.Setenv("REMINDER_WINDOW_DAYS", "14")

		cfg, err := config.Load()

		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Expected addr 0.0.0.0:8080, got %q", cfg.Server.Addr)
		}
		want := []string{"https://a.example", "https://b.example"}
		if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
			t.Errorf("Expected origins %v, got %v", want, cfg.CORS.AllowedOrigins)
		}
		if cfg.Reminder.Enabled || cfg.Reminder.WindowDays != 14 {
			t.Errorf("Unexpected reminder config: %+v", cfg.Reminder)
		}
	})

	t.Run("rejects a bad window", func(t *testing.T) {
		for _, value := range []string{"0", "-1", "week"} {
			clearEnv(t)
			t.Setenv("REMINDER_WINDOW_DAYS", value)

			if _, err := config.Load(); err == nil {
				t.Errorf("Expected error for REMINDER_WINDOW_DAYS=%q", value)
			}
		}
	})

	t.Run("rejects a bad reminder flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REMINDER_ENABLED", "sometimes")

		if _, err := config.Load(); err == nil {
			t.Error("Expected error for REMINDER_ENABLED")
		}
	})
}
