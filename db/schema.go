// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL is kept to the subset both PostgreSQL and SQLite accept, so the
// same schema serves production and local/test databases. Timestamps are
// always written by the application, never defaulted by the database.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Shops
CREATE TABLE IF NOT EXISTS shop (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL
);

-- Stock
-- remaining is decremented ONLY through the conditional update in the
-- store package; the CHECK is a last line of defense, not the mechanism.
CREATE TABLE IF NOT EXISTS shop_stock (
    shop_id TEXT NOT NULL REFERENCES shop(id) ON DELETE CASCADE,
    segment_id INTEGER NOT NULL,
    remaining INTEGER NOT NULL CHECK (remaining >= 0),
    PRIMARY KEY (shop_id, segment_id)
);

CREATE INDEX IF NOT EXISTS idx_shop_stock_shop_id ON shop_stock(shop_id);

-- Participants
-- One row per email for the campaign's lifetime. The PRIMARY KEY is what
-- enforces single participation under concurrent registrations.
CREATE TABLE IF NOT EXISTS participant (
    email TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    registered_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    user_agent TEXT
);
`
