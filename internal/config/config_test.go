package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.AllowedOrigin)
	assert.Equal(t, "registro", cfg.Registry.Database)
	assert.Equal(t, "score", cfg.Accounts.Database)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("REGISTRY_DB_PORT", "5433")
	t.Setenv("REGISTRY_DB_MAX_CONNS", "25")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5433, cfg.Registry.Port)
	assert.Equal(t, 25, cfg.Registry.MaxConns)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("REGISTRY_DB_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5432, cfg.Registry.Port)
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db1", Port: 5432, User: "app", Password: "pw",
		Database: "registro", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db1 port=5432 user=app password=pw dbname=registro sslmode=disable",
		c.GetDSN())
}
