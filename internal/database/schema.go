package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// Migrate creates the users and posts tables plus their indexes when they
// do not exist yet. Statements are idempotent so startup can always run
// the full set.
func Migrate(db *sql.DB, d Dialect) error {
	for _, stmt := range d.schemaStatements() {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	log.Println("Database schema is up to date")
	return nil
}

func (d Dialect) schemaStatements() []string {
	switch d.Name {
	case Postgres.Name:
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				email TEXT UNIQUE NOT NULL,
				name TEXT,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS posts (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				excerpt TEXT NOT NULL,
				content TEXT NOT NULL,
				category TEXT CHECK (category IN ('Tech', 'Politics')) DEFAULT 'Politics',
				slug TEXT UNIQUE,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
		}
	case MySQL.Name:
		// MySQL has no CREATE INDEX IF NOT EXISTS, so the indexes are
		// declared inline with the table.
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				id VARCHAR(64) PRIMARY KEY,
				email VARCHAR(255) UNIQUE NOT NULL,
				name VARCHAR(255),
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
			)`,
			`CREATE TABLE IF NOT EXISTS posts (
				id VARCHAR(64) PRIMARY KEY,
				title TEXT NOT NULL,
				excerpt TEXT NOT NULL,
				content TEXT NOT NULL,
				category VARCHAR(16) DEFAULT 'Politics',
				slug VARCHAR(255) UNIQUE,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				CONSTRAINT chk_posts_category CHECK (category IN ('Tech', 'Politics')),
				INDEX idx_posts_created_at (created_at DESC),
				INDEX idx_posts_category (category)
			)`,
		}
	default: // sqlite3
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				email TEXT UNIQUE NOT NULL,
				name TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS posts (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				excerpt TEXT NOT NULL,
				content TEXT NOT NULL,
				category TEXT CHECK (category IN ('Tech', 'Politics')) DEFAULT 'Politics',
				slug TEXT UNIQUE,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
		}
	}
}

// SeedAuthor inserts the single author row if it is not there yet.
func SeedAuthor(db *sql.DB, d Dialect, id, email, name string) error {
	now := time.Now().UTC()

	var stmt string
	switch d.Name {
	case Postgres.Name:
		stmt = d.Rebind(`INSERT INTO users (id, email, name, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`)
	case MySQL.Name:
		stmt = `INSERT IGNORE INTO users (id, email, name, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`
	default:
		stmt = `INSERT OR IGNORE INTO users (id, email, name, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`
	}

	if _, err := db.Exec(stmt, id, email, name, now, now); err != nil {
		return fmt.Errorf("seed author: %w", err)
	}
	return nil
}
