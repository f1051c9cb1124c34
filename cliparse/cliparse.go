package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/danielhkuo/wheel-stock/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	StockBackend string
	RedisAddr    string
	AdminKey     string

	// External notification collaborators. Both empty disables dispatch.
	NotifyWinURL    string
	NotifyClientURL string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("wheel-stock", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.StockBackend, "stock-backend", "", "Stock backend (sql or redis)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address (required for redis backend)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin API key (prefer env)")

	// Notification endpoints
	fs.StringVar(&cfg.NotifyWinURL, "notify-win-url", "", "Shop win notification endpoint")
	fs.StringVar(&cfg.NotifyClientURL, "notify-client-url", "", "Winner notification endpoint")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.StockBackend == "" {
		cfg.StockBackend = os.Getenv("STOCK_BACKEND")
		if cfg.StockBackend == "" {
			cfg.StockBackend = models.BackendSQL
		}
	}
	if cfg.StockBackend != models.BackendSQL && cfg.StockBackend != models.BackendRedis {
		return Config{}, errors.New("STOCK_BACKEND must be sql or redis")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if cfg.StockBackend == models.BackendRedis && cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR required for redis stock backend")
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	if cfg.NotifyWinURL == "" {
		cfg.NotifyWinURL = os.Getenv("NOTIFY_WIN_URL")
	}
	if cfg.NotifyClientURL == "" {
		cfg.NotifyClientURL = os.Getenv("NOTIFY_CLIENT_URL")
	}

	return cfg, nil
}
