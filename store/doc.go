// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the durable stock counters and the one operation
allowed to spend them.

# The Contract

The whole service's correctness property lives here: for a (shop,
segment) counter seeded with N units, exactly N DecrementIfPositive
calls ever succeed, no matter how many arrive concurrently, and the
counter never goes negative. Both implementations achieve this with a
single atomic conditional write - never a read followed by a write:

	remaining, err := st.DecrementIfPositive(ctx, "shop-1", 2)
	if errors.Is(err, store.ErrOutOfStock) {
		// someone else took the last unit; re-query availability
	}

# Implementations

SQLStore runs a conditional UPDATE with RETURNING:

	UPDATE shop_stock SET remaining = remaining - 1
	WHERE shop_id = $1 AND segment_id = $2 AND remaining > 0
	RETURNING remaining

The row lock taken by the UPDATE totally orders concurrent claims; once
the counter reaches 0 the WHERE clause stops matching and the claim
fails with ErrOutOfStock. Works on PostgreSQL and SQLite.

RedisStore keeps one hash per shop and evaluates a Lua script that
checks and decrements the field in one step. Pick it with
STOCK_BACKEND=redis for high-contention deployments.

# Absent Rows

A missing counter reads as 0 and a decrement against it returns
ErrOutOfStock. Seeding happens only through SetStock, driven by the
admin surface.
*/
package store
