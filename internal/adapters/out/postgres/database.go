// Package postgres opens the PostgreSQL database backing the product catalog.
// Repositories live in subpackages and receive the *gorm.DB opened here.
package postgres

import (
	"fmt"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig holds the connection parameters of the database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SslMode  string
}

// DSN renders the config as a libpq keyword/value connection string.
// An empty SslMode defaults to "disable".
func (c ConnectionConfig) DSN() string {
	sslMode := c.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode,
	)
}

// Open connects to the database. GORM's own query logging is silenced.
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres %s:%s/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}
	return db, nil
}
