// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the wheel-stock API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - StockHandler: availability reads and public shop info
  - SpinHandler: prize claims (the atomic decrement)
  - ParticipantHandler: one-registration-per-email gate
  - AdminHandler: stock seeding and shop registration

	spinHandler := handlers.NewSpinHandler(stockStore, dispatcher, cfg)

# Claim Flow

The kiosk drives the whole exchange:

	POST /participants       → Register (once per email)
	GET  /stock?shopId=...   → ListStock (segments with remaining > 0)
	...client spins locally, samples among available segments...
	POST /spin               → Spin (confirm / commit that segment)

The server never pre-selects a winner. Because the client picks before
the server confirms, losing the race for the last unit is an expected
outcome: /spin answers 409 OUT_OF_STOCK and the client re-fetches
/stock. The contract is "stock never goes negative", not "the prize
shown during the animation is guaranteed".

A /spin that times out client-side must NOT be blindly resent - the
decrement may already have committed. Re-fetch /stock instead.

# Error Codes

Handlers answer with machine-readable codes (models.Code*) so the front
can distinguish "you lost the race" (OUT_OF_STOCK) from "you already
entered" (DUPLICATE_EMAIL) from "bad input" (INVALID_EMAIL,
INVALID_REQUEST) without parsing message text.

# Admin Surface

Stock replenishment is an out-of-band admin action, never a client
operation:

	POST /admin/shops  → UpsertShop
	POST /admin/stock  → UpsertStock

Admin operations require the X-Admin-Key header.
*/
package handlers
