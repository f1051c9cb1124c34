// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Wheel Stock API server.

Wheel Stock is a stock-safe prize allocation service for in-store
prize-wheel campaigns. Kiosks fetch the segments that still have stock,
let the player spin, and confirm the picked segment with the server; the
server's atomic decrement guarantees a prize is never handed out more
times than it was stocked, no matter how many kiosks race for the last
unit.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=wheel.db ADMIN_KEY=... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres --admin-key ...

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string (PostgreSQL) or file path (SQLite)
  - ADMIN_KEY (--admin-key): Secret for the campaign management endpoints

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - STOCK_BACKEND (--stock-backend): sql (default) or redis
  - REDIS_ADDR (--redis-addr): Redis address, required for the redis backend
  - NOTIFY_WIN_URL (--notify-win-url): Shop win notification collaborator
  - NOTIFY_CLIENT_URL (--notify-client-url): Winner notification collaborator

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (stock, spin, participants, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and error codes
  - store: Stock counter backends (SQL, Redis)
  - notify: Best-effort win notification dispatch
  - auth: Admin key validation and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
