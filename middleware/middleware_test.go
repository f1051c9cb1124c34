// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/wheel-stock/models"
)

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple object",
			statusCode: http.StatusOK,
			data:       map[string]string{"key": "value"},
			expected:   `{"key":"value"}`,
		},
		{
			name:       "spin response",
			statusCode: http.StatusOK,
			data:       models.SpinResponse{Remaining: 3},
			expected:   `{"remaining":3}`,
		},
		{
			name:       "created status",
			statusCode: http.StatusCreated,
			data:       map[string]bool{"ok": true},
			expected:   `{"ok":true}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		code          string
		message       string
		expectedError string
	}{
		{
			name:          "out of stock",
			statusCode:    http.StatusConflict,
			code:          models.CodeOutOfStock,
			message:       "segment exhausted",
			expectedError: "OUT_OF_STOCK",
		},
		{
			name:          "duplicate email",
			statusCode:    http.StatusConflict,
			code:          models.CodeDuplicateEmail,
			message:       "already registered",
			expectedError: "DUPLICATE_EMAIL",
		},
		{
			name:          "invalid email",
			statusCode:    http.StatusBadRequest,
			code:          models.CodeInvalidEmail,
			message:       "bad address",
			expectedError: "INVALID_EMAIL",
		},
		{
			name:          "not found",
			statusCode:    http.StatusNotFound,
			code:          models.CodeNotFound,
			message:       "shop not found",
			expectedError: "NOT_FOUND",
		},
		{
			name:          "upstream unavailable",
			statusCode:    http.StatusBadGateway,
			code:          models.CodeUpstreamUnavailable,
			message:       "storage unreachable",
			expectedError: "UPSTREAM_UNAVAILABLE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.code, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error code '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/spin", strings.NewReader(`{"shopId":"shop-1","segmentId":2}`))

		var body models.SpinRequest
		if err := ParseJSONBody(req, &body); err != nil {
			t.Fatalf("ParseJSONBody() error = %v", err)
		}
		if body.ShopID != "shop-1" || body.SegmentID != 2 {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/spin", strings.NewReader(`{not json`))

		var body models.SpinRequest
		if err := ParseJSONBody(req, &body); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/spin", nil)
		req.Header.Set("Origin", "https://wheel.example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for preflight, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://wheel.example.com" {
			t.Errorf("unexpected allow-origin: %s", w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("passthrough", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stock", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			expected:   "203.0.113.5",
		},
		{
			name:       "x-forwarded-for chain",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			expected:   "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			expected:   "203.0.113.9",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "192.168.1.7:5555",
			headers:    nil,
			expected:   "192.168.1.7",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			got := GetClientIP(req)
			if got != tc.expected {
				t.Errorf("GetClientIP() = %s, want %s", got, tc.expected)
			}
		})
	}
}
