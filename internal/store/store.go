package store

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a lookup matches zero rows. Absence is a
// normal outcome for id/slug resolution, so callers check this sentinel
// instead of ever seeing sql.ErrNoRows.
var ErrNotFound = errors.New("record not found")

// Order controls List ordering by creation time.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// OrderFromString parses a query-string order value. Anything that is not
// "asc" means newest first.
func OrderFromString(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return OrderAsc
	}
	return OrderDesc
}
