package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	HTTPPort     string
	DatabaseURL  string
	DBMaxConns   int32
	StoreTimeout time.Duration
	RateRPS      int
	Migrate      bool
}

// Load reads the process environment, after merging a .env file if one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:          get("APP_ENV", "dev"),
		HTTPPort:     get("PORT", "3605"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBMaxConns:   int32(getInt("DB_MAX_CONNS", 10)),
		StoreTimeout: getDuration("STORE_TIMEOUT", 5*time.Second),
		RateRPS:      getInt("RATE_RPS", 100),
		Migrate:      get("APP_MIGRATE", "false") == "true",
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = databaseURL(
			get("DB_HOST", "localhost"),
			get("DB_PORT", "5432"),
			get("DB_NAME", "employees"),
			get("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			get("DB_SSLMODE", "disable"),
		)
	}
	return cfg
}

func databaseURL(host, port, name, user, password, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": []string{sslmode}}.Encode(),
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getDuration accepts Go durations ("3s") or a bare number of seconds.
func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
