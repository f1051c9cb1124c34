// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/handlers"
	"github.com/danielhkuo/wheel-stock/middleware"
	"github.com/danielhkuo/wheel-stock/notify"
	"github.com/danielhkuo/wheel-stock/store"
)

func NewRouter(db *sql.DB, stock store.StockStore, notifier *notify.Dispatcher, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	stockHandler := handlers.NewStockHandler(stock, db, cfg)
	spinHandler := handlers.NewSpinHandler(stock, notifier, cfg)
	participantHandler := handlers.NewParticipantHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(stock, db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Availability and claims (public)
	mux.HandleFunc("GET /stock", middleware.WithLogging(stockHandler.ListStock))
	mux.HandleFunc("POST /spin", middleware.WithLogging(spinHandler.Spin))
	mux.HandleFunc("GET /shops/{id}", middleware.WithLogging(stockHandler.GetShop))

	// Participation (public)
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.Register))
	mux.HandleFunc("GET /participants/{email}", middleware.WithLogging(participantHandler.Status))

	// Campaign management (requires X-Admin-Key)
	mux.HandleFunc("POST /admin/stock", middleware.WithLogging(adminHandler.UpsertStock))
	mux.HandleFunc("POST /admin/shops", middleware.WithLogging(adminHandler.UpsertShop))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("wheel-stock API v1"))
	})

	return mux
}
