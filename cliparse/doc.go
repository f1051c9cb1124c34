// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - StockBackend: sql or redis (default: sql)
  - RedisAddr: Redis address, required when StockBackend is redis
  - AdminKey: Secret for admin endpoints (required)
  - NotifyWinURL: Shop win notification endpoint (optional)
  - NotifyClientURL: Winner notification endpoint (optional)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-stock-backend  Stock backend
	-redis-addr     Redis address
	-admin-key      Admin API key
	-notify-win-url     Shop notification endpoint
	-notify-client-url  Winner notification endpoint

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	STOCK_BACKEND     → -stock-backend
	REDIS_ADDR        → -redis-addr
	ADMIN_KEY         → -admin-key
	NOTIFY_WIN_URL    → -notify-win-url
	NOTIFY_CLIENT_URL → -notify-client-url

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_KEY must be provided
  - REDIS_ADDR must be provided when STOCK_BACKEND=redis

Both notification URLs are optional; leaving them unset disables win
notifications entirely (claims still commit).
*/
package cliparse
