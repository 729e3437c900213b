package spec

import (
	"regexp"
	"strings"
)

var (
	// GMPEqualiser -> GMP_Equaliser
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	// cappedReval -> capped_Reval
	caseBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	// spaces and hyphens become underscores
	separatorRun = regexp.MustCompile(`[\s\-]+`)
)

// SnakeID converts a PascalCase or space-separated name to a snake_case id:
// lowercase, words separated by a single underscore, no other punctuation.
// Ids are not guaranteed globally unique; that is up to whoever curates the
// input.
func SnakeID(name string) string {
	s := acronymBoundary.ReplaceAllString(name, "${1}_${2}")
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	s = separatorRun.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}
