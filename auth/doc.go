// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin authentication and privacy utilities.

# Admin Key

Admin endpoints (stock seeding, shop registration) require the configured
key in the X-Admin-Key header:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

Validation uses a constant-time comparison. An empty configured key never
validates, so a misconfigured deployment fails closed.

# IP Hashing

For privacy-preserving abuse tracing on participant registration:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. The raw address is
never stored.
*/
package auth
