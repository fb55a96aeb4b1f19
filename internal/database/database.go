package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Open creates and configures the connection pool for the configured
// backend and verifies it with a ping before returning.
func Open(driver, dsn string) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, Dialect{}, err
	}
	if dsn == "" {
		return nil, Dialect{}, fmt.Errorf("DATABASE_URL is required for driver %q", driver)
	}

	var db *sql.DB
	switch dialect.Name {
	case SQLite.Name:
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, Dialect{}, fmt.Errorf("create database directory: %w", err)
			}
		}
		db, err = sql.Open("sqlite3", dsn)
	case Postgres.Name:
		db, err = sql.Open("pgx", dsn)
	case MySQL.Name:
		db, err = sql.Open("mysql", dsn)
	}
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("open database: %w", err)
	}

	if dialect.Name == SQLite.Name {
		// A file database gets a single writer connection; more just
		// trades throughput for SQLITE_BUSY errors.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	// Fast fail if unreachable
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, Dialect{}, fmt.Errorf("ping database: %w", err)
	}

	log.Printf("Database connection pool established (%s)", dialect.Name)
	return db, dialect, nil
}
