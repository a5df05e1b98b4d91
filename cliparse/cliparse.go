package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	CSRFSecret      string
	LogLevel        slog.Level
	Seed            bool
	ShutdownTimeout time.Duration
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("quickly-polls", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CSRFSecret, "csrf-secret", "", "CSRF token secret (prefer env)")

	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Seed, "seed", false, "Insert demo questions into an empty database")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.CSRFSecret == "" {
		cfg.CSRFSecret = os.Getenv("CSRF_SECRET")
	}
	if cfg.CSRFSecret == "" {
		return Config{}, errors.New("CSRF_SECRET required")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if !cfg.Seed {
		if seedStr := os.Getenv("SEED_DEMO"); seedStr != "" {
			seed, err := strconv.ParseBool(seedStr)
			if err != nil {
				return Config{}, errors.New("invalid SEED_DEMO env variable")
			}
			cfg.Seed = seed
		}
	}

	if cfg.ShutdownTimeout == 0 {
		if timeoutStr := os.Getenv("SHUTDOWN_TIMEOUT"); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil {
				return Config{}, errors.New("invalid SHUTDOWN_TIMEOUT env variable")
			}
			cfg.ShutdownTimeout = timeout
		} else {
			cfg.ShutdownTimeout = 10 * time.Second
		}
	}
	if cfg.ShutdownTimeout < 0 {
		return Config{}, errors.New("shutdown timeout must not be negative")
	}

	return cfg, nil
}
