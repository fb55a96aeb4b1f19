package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the differences between the supported SQL backends so
// the stores can be written once against `?` placeholders and stay free
// of backend-specific syntax.
type Dialect struct {
	Name string
}

var (
	SQLite   = Dialect{Name: "sqlite3"}
	Postgres = Dialect{Name: "postgres"}
	MySQL    = Dialect{Name: "mysql"}
)

// DialectFor maps the configured driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite3", "sqlite":
		return SQLite, nil
	case "postgres", "pgx":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

// Rebind rewrites `?` placeholders into the form the backend expects.
// SQLite and MySQL take `?` as-is; Postgres wants $1..$n in order.
func (d Dialect) Rebind(query string) string {
	if d.Name != Postgres.Name {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
