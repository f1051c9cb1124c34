// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL sticks to the PostgreSQL/SQLite common subset so the same schema
runs in production (postgres) and in tests (in-memory sqlite).

# Tables

The schema includes:

  - shop: Shop identity and notification email
  - shop_stock: Remaining prize units per (shop, segment)
  - participant: One registration per email

# Relationships

	shop 1──* shop_stock

Participants are intentionally not linked to stock rows: a claim records
which shop/segment was granted, never to whom. That association exists
only in the ephemeral request and the outbound notification.

# Constraints

  - shop_stock PRIMARY KEY (shop_id, segment_id): one counter per pair
  - shop_stock CHECK (remaining >= 0): stock can never go negative
  - participant PRIMARY KEY (email): single participation, enforced by
    the database rather than by application-level check-then-insert
*/
package db
