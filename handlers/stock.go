// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/middleware"
	"github.com/danielhkuo/wheel-stock/models"
	"github.com/danielhkuo/wheel-stock/store"
)

type StockHandler struct {
	stock store.StockStore
	db    *sql.DB
	cfg   cliparse.Config
}

func NewStockHandler(stock store.StockStore, db *sql.DB, cfg cliparse.Config) *StockHandler {
	return &StockHandler{stock: stock, db: db, cfg: cfg}
}

// ListStock handles GET /stock?shopId=<id>
// Returns only segments with remaining > 0. The client samples uniformly
// among them and then confirms its pick via POST /spin; the server never
// pre-selects a winner.
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	shopID := r.URL.Query().Get("shopId")
	if shopID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "shopId is required")
		return
	}

	segments, err := h.stock.ListAvailable(r.Context(), shopID)
	if err != nil {
		slog.Error("failed to list stock", "shop_id", shopID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Stock backend unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StockResponse{
		ShopID:   shopID,
		Segments: segments,
	})
}

// GetShop handles GET /shops/{id}
// Public shop info only; the notification email never leaves the server.
func (h *StockHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	shopID := r.PathValue("id")
	if shopID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "shop id is required")
		return
	}

	var shop models.Shop
	err := h.db.QueryRowContext(r.Context(), `
		SELECT id, name FROM shop WHERE id = $1
	`, shopID).Scan(&shop.ID, &shop.Name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Shop not found")
		return
	}
	if err != nil {
		slog.Error("failed to query shop", "shop_id", shopID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Database unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShopResponse{
		ID:   shop.ID,
		Name: shop.Name,
	})
}
