// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("CSRF_SECRET", "test-secret")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected database type postgres, got %q", cfg.DatabaseType)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected log level debug, got %v", cfg.LogLevel)
	}
	if !cfg.Seed {
		t.Error("expected seed to be enabled")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected shutdown timeout 3s, got %v", cfg.ShutdownTimeout)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED_DEMO", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected default log level info, got %v", cfg.LogLevel)
	}
	if cfg.Seed {
		t.Error("expected seed to be disabled by default")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:other.db", "-csrf-secret", "s1", "-seed", "-shutdown-timeout", "1s"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:other.db" {
		t.Errorf("CLI should override env: expected file:other.db, got %q", cfg.DatabaseURL)
	}
	if cfg.CSRFSecret != "s1" {
		t.Errorf("CLI should override env: expected s1, got %q", cfg.CSRFSecret)
	}
	if !cfg.Seed {
		t.Error("expected -seed to enable seeding")
	}
	if cfg.ShutdownTimeout != time.Second {
		t.Errorf("expected shutdown timeout 1s, got %v", cfg.ShutdownTimeout)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database URL", map[string]string{"DATABASE_URL": "", "CSRF_SECRET": "s"}, nil},
		{"missing CSRF secret", map[string]string{"DATABASE_URL": "file:x.db", "CSRF_SECRET": ""}, nil},
		{"invalid port env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unsupported database type", nil, []string{"-t", "mysql"}},
		{"invalid log level", nil, []string{"-log-level", "loud"}},
		{"invalid seed env", map[string]string{"SEED_DEMO": "maybe"}, nil},
		{"invalid shutdown timeout env", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}, nil},
		{"negative shutdown timeout", nil, []string{"-shutdown-timeout", "-1s"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("PORT", "")
			t.Setenv("SEED_DEMO", "")
			t.Setenv("SHUTDOWN_TIMEOUT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}
