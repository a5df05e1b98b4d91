// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - CSRFSecret: Secret for signing form tokens (required)
  - LogLevel: slog level (default: info)
  - Seed: Insert demo questions into an empty database
  - ShutdownTimeout: Graceful shutdown deadline (default: 10s)

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	--csrf-secret      CSRF token secret
	--log-level        Log level
	--seed             Seed demo questions
	--shutdown-timeout Shutdown deadline

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	CSRF_SECRET      → --csrf-secret
	LOG_LEVEL        → --log-level
	SEED_DEMO        → --seed
	SHUTDOWN_TIMEOUT → --shutdown-timeout

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing, if one exists.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - CSRF_SECRET must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - PORT must be 1-65535
*/
package cliparse
