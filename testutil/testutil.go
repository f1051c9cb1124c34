// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The pool is pinned to one connection so the :memory: database
// survives for the whole test and concurrent handler calls serialize on
// it the way a single kiosk gateway would.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3319,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		StockBackend: "sql",
		AdminKey:     "test-admin-key",
	}
}

// SeedShop inserts a shop row
func SeedShop(t *testing.T, conn *sql.DB, id, name, email string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO shop (id, name, email) VALUES ($1, $2, $3)
	`, id, name, email)
	if err != nil {
		t.Fatalf("Failed to seed shop: %v", err)
	}
}

// SeedStock inserts a stock counter for a (shop, segment) pair
func SeedStock(t *testing.T, conn *sql.DB, shopID string, segmentID, remaining int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO shop_stock (shop_id, segment_id, remaining) VALUES ($1, $2, $3)
	`, shopID, segmentID, remaining)
	if err != nil {
		t.Fatalf("Failed to seed stock: %v", err)
	}
}

// SeedParticipant inserts a participant row
func SeedParticipant(t *testing.T, conn *sql.DB, email, firstName, lastName string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO participant (email, first_name, last_name, registered_at)
		VALUES ($1, $2, $3, $4)
	`, email, firstName, lastName, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed participant: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
