// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Wheel Stock API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, stock, notifier, cfg)

# Endpoints

Health:

	GET /health

Availability and claims (public):

	GET  /stock?shopId=<id> - Segments with remaining stock
	POST /spin              - Claim one unit of a segment
	GET  /shops/{id}        - Public shop info

Participation (public):

	POST /participants         - Register for the campaign
	GET  /participants/{email} - Check registration status

Campaign management (requires X-Admin-Key):

	POST /admin/stock - Seed or reset a stock counter
	POST /admin/shops - Create or update a shop

# Handler Initialization

The router creates handler instances with dependency injection:

	stockHandler := handlers.NewStockHandler(stock, db, cfg)
	spinHandler := handlers.NewSpinHandler(stock, notifier, cfg)
	participantHandler := handlers.NewParticipantHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(stock, db, cfg)

Spin claims go through the store.StockStore abstraction so the counter
backend (SQL or Redis) is chosen once at startup; participant and shop
rows always live in the SQL database.
*/
package router
