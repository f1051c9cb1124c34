// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/wheel-stock/auth"
	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/middleware"
	"github.com/danielhkuo/wheel-stock/models"
	"github.com/danielhkuo/wheel-stock/store"
)

type AdminHandler struct {
	stock store.StockStore
	db    *sql.DB
	cfg   cliparse.Config
}

func NewAdminHandler(stock store.StockStore, db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{stock: stock, db: db, cfg: cfg}
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.CodeUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// UpsertStock handles POST /admin/stock
// The only replenishment path: seeds or resets a (shop, segment)
// counter. Client-facing operations never increment stock.
func (h *AdminHandler) UpsertStock(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var req models.UpsertStockRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.ShopID == "" || req.SegmentID <= 0 || req.Remaining < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "shopId, segmentId and a non-negative remaining are required")
		return
	}

	// Stock must belong to a registered shop
	var exists bool
	err := h.db.QueryRowContext(r.Context(), `
		SELECT EXISTS(SELECT 1 FROM shop WHERE id = $1)
	`, req.ShopID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query shop", "shop_id", req.ShopID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Database unavailable")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Shop not found")
		return
	}

	if err := h.stock.SetStock(r.Context(), req.ShopID, req.SegmentID, req.Remaining); err != nil {
		slog.Error("failed to set stock", "shop_id", req.ShopID, "segment_id", req.SegmentID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Stock backend unavailable")
		return
	}

	slog.Info("stock set", "shop_id", req.ShopID, "segment_id", req.SegmentID, "remaining", req.Remaining)

	middleware.JSONResponse(w, http.StatusOK, models.UpsertStockResponse{
		ShopID:    req.ShopID,
		SegmentID: req.SegmentID,
		Remaining: req.Remaining,
	})
}

// UpsertShop handles POST /admin/shops
func (h *AdminHandler) UpsertShop(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var req models.UpsertShopRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.ID == "" || req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "id and name are required")
		return
	}
	if !emailRe.MatchString(normalizeEmail(req.Email)) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidEmail, "A valid shop email is required")
		return
	}

	_, err := h.db.ExecContext(r.Context(), `
		INSERT INTO shop (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, email = excluded.email
	`, req.ID, req.Name, normalizeEmail(req.Email))
	if err != nil {
		slog.Error("failed to upsert shop", "shop_id", req.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Database unavailable")
		return
	}

	slog.Info("shop upserted", "shop_id", req.ID)

	middleware.JSONResponse(w, http.StatusOK, models.ShopResponse{
		ID:   req.ID,
		Name: req.Name,
	})
}
