// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Machine-readable error codes. Clients branch on these, never on the
// HTTP status or message text alone.
const (
	CodeOutOfStock          = "OUT_OF_STOCK"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeInvalidEmail        = "INVALID_EMAIL"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// Stock backend constants
const (
	BackendSQL   = "sql"
	BackendRedis = "redis"
)

// Request types

type SpinRequest struct {
	ShopID    string `json:"shopId"`
	SegmentID int    `json:"segmentId"`
	// Optional: when both are present, a win notification is dispatched
	// to the shop and the winner after the stock decrement commits.
	SegmentTitle string `json:"segmentTitle,omitempty"`
	UserEmail    string `json:"userEmail,omitempty"`
}

type RegisterParticipantRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UpsertStockRequest struct {
	ShopID    string `json:"shopId"`
	SegmentID int    `json:"segmentId"`
	Remaining int    `json:"remaining"`
}

type UpsertShopRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Response types

type SpinResponse struct {
	Remaining int `json:"remaining"`
}

type StockResponse struct {
	ShopID   string         `json:"shopId"`
	Segments []SegmentStock `json:"segments"`
}

type RegisterParticipantResponse struct {
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type ParticipantStatusResponse struct {
	Registered bool `json:"registered"`
}

type ShopResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UpsertStockResponse struct {
	ShopID    string `json:"shopId"`
	SegmentID int    `json:"segmentId"`
	Remaining int    `json:"remaining"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// SegmentStock is one wheel segment's remaining quantity at a shop.
type SegmentStock struct {
	ID        int `json:"id"`
	Remaining int `json:"remaining"`
}

type Shop struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"-"` // Never expose in JSON
}

type Participant struct {
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Outbound notification payloads (external collaborators)

type ShopWinNotification struct {
	ShopID       string `json:"shopId"`
	SegmentID    int    `json:"segmentId"`
	SegmentTitle string `json:"segmentTitle"`
	UserEmail    string `json:"userEmail"`
}

type WinnerNotification struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	ShopName     string `json:"shopName"`
	SegmentTitle string `json:"segmentTitle"`
}
