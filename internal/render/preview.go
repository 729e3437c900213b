package render

import (
	"fmt"
	"strings"

	"github.com/peter8zero/specbuilder/internal/extract"
)

// knownAcronyms are category words rendered fully upper-case instead of
// title-case when formatting labels for display.
var knownAcronyms = map[string]bool{
	"gmp":  true,
	"dc":   true,
	"pcls": true,
	"erf":  true,
	"lrf":  true,
	"afr":  true,
	"cetv": true,
}

// FormatCategory formats a category key for display, preserving known
// acronyms.
func FormatCategory(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		if knownAcronyms[strings.ToLower(w)] {
			words[i] = strings.ToUpper(w)
		} else {
			words[i] = titleWord(w)
		}
	}
	return strings.Join(words, " ")
}

// titleWord upper-cases the first byte of a word and lower-cases the rest.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// Preview renders a compact human-readable summary of extracted options and
// capabilities: counts per table, one line per category. Capabilities are
// grouped by parent option, with a (standalone) group for records lacking
// one.
func Preview(options extract.Table[extract.Option], capabilities extract.Table[extract.Capability]) string {
	var lines []string

	totalOptions := options.Total()
	lines = append(lines, fmt.Sprintf("Options (%d):", totalOptions))
	if totalOptions == 0 {
		lines = append(lines, "  (none)")
	}
	for _, cat := range sortedCategories(options) {
		items := make([]string, 0, len(options[cat]))
		for _, o := range options[cat] {
			items = append(items, fmt.Sprintf("%s (%s)", o.Name, o.CodeClass))
		}
		lines = append(lines, fmt.Sprintf("  %-14s %s", FormatCategory(cat), strings.Join(items, ", ")))
	}

	lines = append(lines, "")

	totalCaps := capabilities.Total()
	lines = append(lines, fmt.Sprintf("Capabilities (%d):", totalCaps))
	if totalCaps == 0 {
		lines = append(lines, "  (none)")
	}
	for _, cat := range sortedCategories(capabilities) {
		lines = append(lines, fmt.Sprintf("  %-14s %s", FormatCategory(cat), capabilityGroups(capabilities[cat])))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// capabilityGroups joins one category's capabilities into parent groups in
// first-seen parent order, standalone records last.
func capabilityGroups(caps []extract.Capability) string {
	var parentOrder []string
	parented := map[string][]string{}
	var standalone []string

	for _, c := range caps {
		if c.ParentOption != nil {
			p := c.ParentOption.Name
			if _, seen := parented[p]; !seen {
				parentOrder = append(parentOrder, p)
			}
			parented[p] = append(parented[p], c.Name)
		} else {
			standalone = append(standalone, c.Name)
		}
	}

	var parts []string
	for _, p := range parentOrder {
		parts = append(parts, fmt.Sprintf("%s  -> parent: %s", strings.Join(parented[p], ", "), p))
	}
	if len(standalone) > 0 {
		parts = append(parts, fmt.Sprintf("%s  (standalone)", strings.Join(standalone, ", ")))
	}

	return strings.Join(parts, "; ")
}
