// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/danielhkuo/wheel-stock/auth"
	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/middleware"
	"github.com/danielhkuo/wheel-stock/models"
	"github.com/danielhkuo/wheel-stock/store"
)

// emailRe mirrors the kiosk front-end's address check: something@something.tld
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ParticipantHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewParticipantHandler(db *sql.DB, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{db: db, cfg: cfg}
}

// normalizeEmail lowercases and trims so that A@x.com and a@x.com are
// the same participant.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register handles POST /participants
// One registration per email for the campaign's lifetime. Duplicate
// detection is the participant table's PRIMARY KEY, not a prior SELECT,
// so two simultaneous registrations with the same email cannot both
// succeed.
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "firstName and lastName are required")
		return
	}

	email := normalizeEmail(req.Email)
	if !emailRe.MatchString(email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidEmail, "A valid email address is required")
		return
	}

	// Hashed for abuse tracing; the raw address is never stored
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKey)
	userAgent := r.UserAgent()
	registeredAt := time.Now()

	_, err := h.db.ExecContext(r.Context(), `
		INSERT INTO participant (email, first_name, last_name, registered_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, email, req.FirstName, req.LastName, registeredAt, ipHash, userAgent)

	if err != nil {
		if store.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, models.CodeDuplicateEmail, "This email has already played")
			return
		}
		slog.Error("failed to insert participant", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Database unavailable")
		return
	}

	slog.Info("participant registered", "email", email)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterParticipantResponse{
		Email:        email,
		RegisteredAt: registeredAt,
	})
}

// Status handles GET /participants/{email}
// Lets the front gate "you already played" before offering a spin.
func (h *ParticipantHandler) Status(w http.ResponseWriter, r *http.Request) {
	email := normalizeEmail(r.PathValue("email"))
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "email is required")
		return
	}

	var exists bool
	err := h.db.QueryRowContext(r.Context(), `
		SELECT EXISTS(SELECT 1 FROM participant WHERE email = $1)
	`, email).Scan(&exists)

	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Database unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantStatusResponse{Registered: exists})
}
