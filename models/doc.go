// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SpinRequest: shopId, segmentId, optional segmentTitle + userEmail
  - RegisterParticipantRequest: email, firstName, lastName
  - UpsertStockRequest: shopId, segmentId, remaining (admin)
  - UpsertShopRequest: id, name, email (admin)

# Response Types

Types for JSON responses:

  - SpinResponse: remaining
  - StockResponse: shopId, segments
  - RegisterParticipantResponse: email, registeredAt
  - ParticipantStatusResponse: registered
  - ShopResponse: id, name (email is never exposed)
  - ErrorResponse: error (machine code), message

# Domain Types

Internal data structures:

  - SegmentStock: one segment's remaining quantity at a shop
  - Shop: shop identity and notification email
  - Participant: one registration per email, immutable after creation

# Error Codes

Every non-2xx response carries one of these in ErrorResponse.Error so
clients can branch programmatically:

	CodeOutOfStock          = "OUT_OF_STOCK"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeInvalidEmail        = "INVALID_EMAIL"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"

OUT_OF_STOCK in particular is expected under contention: the client picked
a segment before the server confirmed it, someone else took the last unit,
and the client should re-fetch /stock rather than retry the same spin.

# Notification Payloads

ShopWinNotification and WinnerNotification are the outbound bodies posted
to the external notify-win and notify-client collaborators after a
successful claim.
*/
package models
