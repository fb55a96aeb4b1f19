// Package content holds the presentation utilities applied to a post's
// stored markup: anchor-id injection for headings, table-of-contents
// extraction and read-time estimation.
package content

import (
	"fmt"
	"regexp"
	"strings"
)

// Heading is one entry in a post's table of contents.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	headingTag    = regexp.MustCompile(`(?is)<h([1-3])>(.*?)</h[1-3]>`)
	headingWithID = regexp.MustCompile(`(?is)<h([1-3])\s+id="([^"]+)">(.*?)</h[1-3]>`)
	innerTag      = regexp.MustCompile(`<[^>]*>`)
)

// InjectHeadingIDs gives every h1-h3 a sequential heading-N id so anchor
// links and the table of contents line up with the rendered markup.
func InjectHeadingIDs(html string) string {
	index := 0
	return headingTag.ReplaceAllStringFunc(html, func(match string) string {
		parts := headingTag.FindStringSubmatch(match)
		id := fmt.Sprintf("heading-%d", index)
		index++
		return fmt.Sprintf(`<h%s id="%s">%s</h%s>`, parts[1], id, parts[2], parts[1])
	})
}

// ExtractTOC collects the headings that carry ids, in document order.
// Nested tags inside a heading are stripped from the text.
func ExtractTOC(html string) []Heading {
	matches := headingWithID.FindAllStringSubmatch(html, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			ID:    m[2],
			Text:  strings.TrimSpace(innerTag.ReplaceAllString(m[3], "")),
			Level: int(m[1][0] - '0'),
		})
	}
	return headings
}

// ReadTime estimates reading minutes at 200 words per minute, rounded up.
func ReadTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + 199) / 200
}
