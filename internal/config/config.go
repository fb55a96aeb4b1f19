package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the process reads from the environment. It is
// built once in main and passed down explicitly.
type Config struct {
	Port string

	// DBDriver selects the storage backend: sqlite3, postgres or mysql.
	// DBDSN is the driver-specific connection string (a file path for
	// sqlite3, a URL/keyword DSN for postgres and mysql).
	DBDriver string
	DBDSN    string

	AllowedOrigin string

	// AdminPasswordHash is a bcrypt hash of the shared admin password.
	// Empty disables the password check (host gating still applies).
	AdminPasswordHash string

	// TrustProxyHeaders allows admin requests that carry X-Forwarded-For /
	// X-Real-IP. Off by default: a forwarded request is not local.
	TrustProxyHeaders bool

	// Author row seeded into the users table at startup.
	AuthorID    string
	AuthorEmail string
	AuthorName  string
}

func Load() Config {
	driver := getEnvOrDefault("DB_DRIVER", "sqlite3")

	return Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		DBDriver:          driver,
		DBDSN:             getEnvOrDefault("DATABASE_URL", defaultDSN(driver)),
		AllowedOrigin:     getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		TrustProxyHeaders: getBoolEnvOrDefault("TRUST_PROXY_HEADERS", false),
		AuthorID:          getEnvOrDefault("AUTHOR_ID", "amish-harsoor"),
		AuthorEmail:       getEnvOrDefault("AUTHOR_EMAIL", "amish@example.com"),
		AuthorName:        getEnvOrDefault("AUTHOR_NAME", "Amish B Harsoor"),
	}
}

// defaultDSN only exists for sqlite3, where a local file is a sensible
// default. Server backends must be given DATABASE_URL explicitly.
func defaultDSN(driver string) string {
	if driver == "sqlite3" {
		return "db/local.db"
	}
	return ""
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %t", key, raw, defaultValue)
		return defaultValue
	}
	return value
}
