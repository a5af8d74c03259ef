package config

import (
	"os"
	"strconv"
)

// DatabaseConfig describes one Postgres pool.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds the lib/pq connection string.
func (c *DatabaseConfig) GetDSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + c.SSLMode
}

// Config score-backend (HTTP API) configuration.
//
// Two pools: Registry holds the read-only electoral sources (AC, cuaderno,
// geographic view, miembros de mesa, movimientos); Accounts holds the
// application users table used by login and account management. The stores
// share no state.
type Config struct {
	HTTP struct {
		Addr          string
		AllowedOrigin string
	}
	JWTSecret string
	Registry  DatabaseConfig
	Accounts  DatabaseConfig
	Log       struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables once at startup.
// Nothing else in the process reads the environment.
func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":9000")
	cfg.HTTP.AllowedOrigin = getEnv("ALLOWED_ORIGIN", "http://localhost:3000")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	cfg.Registry.Host = getEnv("REGISTRY_DB_HOST", "localhost")
	cfg.Registry.Port = parseInt(getEnv("REGISTRY_DB_PORT", "5432"), 5432)
	cfg.Registry.User = getEnv("REGISTRY_DB_USER", "postgres")
	cfg.Registry.Password = getEnv("REGISTRY_DB_PASSWORD", "postgres")
	cfg.Registry.Database = getEnv("REGISTRY_DB_NAME", "registro")
	cfg.Registry.SSLMode = getEnv("REGISTRY_DB_SSLMODE", "disable")
	cfg.Registry.MaxConns = parseInt(getEnv("REGISTRY_DB_MAX_CONNS", "10"), 10)
	cfg.Registry.MaxIdle = parseInt(getEnv("REGISTRY_DB_MAX_IDLE", "5"), 5)

	cfg.Accounts.Host = getEnv("ACCOUNTS_DB_HOST", "localhost")
	cfg.Accounts.Port = parseInt(getEnv("ACCOUNTS_DB_PORT", "5432"), 5432)
	cfg.Accounts.User = getEnv("ACCOUNTS_DB_USER", "postgres")
	cfg.Accounts.Password = getEnv("ACCOUNTS_DB_PASSWORD", "postgres")
	cfg.Accounts.Database = getEnv("ACCOUNTS_DB_NAME", "score")
	cfg.Accounts.SSLMode = getEnv("ACCOUNTS_DB_SSLMODE", "disable")
	cfg.Accounts.MaxConns = parseInt(getEnv("ACCOUNTS_DB_MAX_CONNS", "10"), 10)
	cfg.Accounts.MaxIdle = parseInt(getEnv("ACCOUNTS_DB_MAX_IDLE", "5"), 5)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
