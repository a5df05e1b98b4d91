// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Polls server.

Quickly Polls lists published questions, shows their choices, records
votes and displays the tallies. A question is published once its
publication date has passed; until then it is invisible.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:polls.db CSRF_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -csrf-secret ...

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - CSRF_SECRET (--csrf-secret): Secret for signing form tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL (--log-level): debug, info, warn, error (default: info)
  - SEED_DEMO (--seed): insert demo questions into an empty database
  - SHUTDOWN_TIMEOUT (--shutdown-timeout): graceful shutdown deadline (default: 10s)

Logs are text on a terminal and JSON otherwise.

# Architecture

  - handlers: HTML and JSON request handlers
  - store: queries; the current time is always passed in
  - views: embedded templates
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, recovery, CSRF, CORS, JSON helpers
  - models: Domain, page and API types
  - auth: CSRF token primitives
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
