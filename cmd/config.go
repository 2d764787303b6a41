package cmd

import (
	"log/slog"
	"strings"

	"ordertaking/internal/adapters/out/postgres"
	"ordertaking/internal/jobs"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	AddressServiceURL      string
	CatalogRefreshSchedule string
	LogLevel               string
}

// UseDatabase reports whether the catalog is stored in postgres.
func (c Config) UseDatabase() bool {
	return c.DBHost != ""
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SslMode:  c.DBSslMode,
	}
}

func (c Config) RefreshSchedule() string {
	if c.CatalogRefreshSchedule == "" {
		return jobs.DefaultCatalogRefreshSchedule
	}
	return c.CatalogRefreshSchedule
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
