package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	config "github.com/webcore-labs/stripe-gateway/api/config"
)

var db *sql.DB

// Initialize connects to the audit-log database and verifies the connection.
func Initialize() error {
	var err error
	dsn := withConnectTimeout(config.AppConfig.DatabaseURL)
	db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Verify connection
	err = db.Ping()
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Audit writes are small and infrequent; a modest pool is plenty.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return nil
}

// withConnectTimeout appends connect_timeout=5 to the DSN if not present, so a
// stalled database cannot hang startup indefinitely.
func withConnectTimeout(dsn string) string {
	if strings.Contains(strings.ToLower(dsn), "connect_timeout=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "connect_timeout=5"
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}
