// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/middleware"
	"github.com/danielhkuo/wheel-stock/models"
	"github.com/danielhkuo/wheel-stock/notify"
	"github.com/danielhkuo/wheel-stock/store"
)

type SpinHandler struct {
	stock    store.StockStore
	notifier *notify.Dispatcher
	cfg      cliparse.Config
}

func NewSpinHandler(stock store.StockStore, notifier *notify.Dispatcher, cfg cliparse.Config) *SpinHandler {
	return &SpinHandler{stock: stock, notifier: notifier, cfg: cfg}
}

// Spin handles POST /spin
// Confirms the segment the client's wheel landed on. The decrement is a
// single atomic operation at the store; OUT_OF_STOCK here means another
// kiosk took the last unit between the client's /stock read and now,
// and the client should re-fetch availability rather than resend the
// same claim (the earlier attempt may already have decremented).
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	var req models.SpinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.ShopID == "" || req.SegmentID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidRequest, "shopId and segmentId are required")
		return
	}

	remaining, err := h.stock.DecrementIfPositive(r.Context(), req.ShopID, req.SegmentID)
	if errors.Is(err, store.ErrOutOfStock) {
		middleware.ErrorResponse(w, http.StatusConflict, models.CodeOutOfStock, "Segment exhausted; re-fetch /stock")
		return
	}
	if err != nil {
		slog.Error("failed to decrement stock", "shop_id", req.ShopID, "segment_id", req.SegmentID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeUpstreamUnavailable, "Stock backend unavailable")
		return
	}

	slog.Info("prize claimed", "shop_id", req.ShopID, "segment_id", req.SegmentID, "remaining", remaining)

	// The decrement is committed; notifications are best-effort and run
	// detached so their failure cannot reach the response.
	if h.notifier != nil && h.notifier.Enabled() && req.UserEmail != "" && req.SegmentTitle != "" {
		go h.notifier.DispatchWin(req.ShopID, req.SegmentID, req.SegmentTitle, req.UserEmail)
	}

	middleware.JSONResponse(w, http.StatusOK, models.SpinResponse{Remaining: remaining})
}
