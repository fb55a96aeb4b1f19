package store

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a post title: lowercase, every run of
// characters outside [a-z0-9] collapses to a single hyphen, and hyphens
// are trimmed from both ends. "Hello, World! 2024" -> "hello-world-2024".
//
// The result is not checked for uniqueness here; the UNIQUE constraint on
// posts.slug makes a collision fail the insert instead.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
