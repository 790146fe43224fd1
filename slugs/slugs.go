package slugs

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	manyHyphens  = regexp.MustCompile(`-+`)
)

// FromTitle derives a URL-safe slug: lower-case, strip characters that
// are not word/space/hyphen, collapse whitespace and repeated hyphens
// into single hyphens.
func FromTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = manyHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithTimestamp appends the current unix timestamp to force uniqueness
// when a derived slug collides with an existing document. Best-effort
// dedup, not a sequence allocator; the store's unique index is the
// final arbiter.
func WithTimestamp(slug string) string {
	return fmt.Sprintf("%s-%d", slug, time.Now().Unix())
}
