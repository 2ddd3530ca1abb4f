package catalog

import (
	"regexp"
	"strings"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the value, collapses every run of non-alphanumerics
// into a single dash and trims leading/trailing dashes.
func Slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = nonSlugRuns.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
