package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/db"
	"github.com/danielhkuo/wheel-stock/middleware"
	"github.com/danielhkuo/wheel-stock/models"
	"github.com/danielhkuo/wheel-stock/notify"
	"github.com/danielhkuo/wheel-stock/router"
	"github.com/danielhkuo/wheel-stock/store"
)

func main() {
	var err error

	// Optional .env for local development; real deployments set the
	// environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (postgres or sqlite)
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Pick the stock counter backend
	var stock store.StockStore
	if cfg.StockBackend == models.BackendRedis {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			slog.Error("redis ping failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		stock = store.NewRedisStore(rdb)
		slog.Info("Stock backend ready", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		stock = store.NewSQLStore(dbConn)
		slog.Info("Stock backend ready", "backend", "sql")
	}

	// Win notifications are best-effort and optional
	notifier := notify.NewDispatcher(dbConn, cfg)
	if notifier.Enabled() {
		slog.Info("Win notifications enabled")
	} else {
		slog.Info("Win notifications disabled (no collaborator URLs configured)")
	}

	// Create router
	mux := router.NewRouter(dbConn, stock, notifier, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
